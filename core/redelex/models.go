package redelex

// Proceso is a legal process as returned by Redelex.
type Proceso struct {
	ID              int          `json:"procesoId"`
	Radicado        string       `json:"numeroRadicacion"`
	Clase           string       `json:"claseProceso"`
	Etapa           string       `json:"etapaProcesal"`
	Estado          string       `json:"estado"`
	Despacho        string       `json:"despacho"`
	Ciudad          string       `json:"ciudad"`
	Demandante      string       `json:"demandante"`
	Demandado       string       `json:"demandado"`
	Identificacion  string       `json:"identificacionDemandante"`
	FechaRadicacion string       `json:"fechaRadicacion"`
	Abogado         string       `json:"abogado,omitempty"`
	Actuaciones     []Actuacion  `json:"actuaciones,omitempty"`
	Medidas         []MedidaCaut `json:"medidasCautelares,omitempty"`
}

// Actuacion is one docket entry of a process.
type Actuacion struct {
	Fecha       string `json:"fecha"`
	Descripcion string `json:"actuacion"`
	Anotacion   string `json:"anotacion,omitempty"`
}

// MedidaCaut is a precautionary measure attached to a process.
type MedidaCaut struct {
	Tipo   string `json:"tipoMedida"`
	Estado string `json:"estado"`
	Bien   string `json:"bien,omitempty"`
}
