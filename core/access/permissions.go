package access

// Permission strings granted to users.
const (
	PermProcesosVer            = "procesos:ver"
	PermReportesExportar       = "reportes:exportar"
	PermUsuariosGestionar      = "usuarios:gestionar"
	PermInmobiliariasGestionar = "inmobiliarias:gestionar"
)

// DefaultPermissions returns the permissions a new user of role starts with.
func DefaultPermissions(role string) []string {
	switch role {
	case "admin":
		return []string{PermProcesosVer, PermReportesExportar, PermUsuariosGestionar, PermInmobiliariasGestionar}
	case "inmobiliaria":
		return []string{PermProcesosVer, PermReportesExportar}
	default:
		return []string{}
	}
}
