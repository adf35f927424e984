package models

import "time"

// Inmobiliaria is a real-estate company client of the firm.
type Inmobiliaria struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Nit       string    `gorm:"column:nit;type:varchar(30);uniqueIndex;not null" json:"nit"`
	Nombre    string    `gorm:"column:nombre;type:varchar(160);not null" json:"nombre"`
	Codigo    string    `gorm:"column:codigo;type:varchar(30)" json:"codigo"`
	Email     string    `gorm:"column:email;type:varchar(160)" json:"email"`
	Telefono  string    `gorm:"column:telefono;type:varchar(40)" json:"telefono"`
	Ciudad    string    `gorm:"column:ciudad;type:varchar(80)" json:"ciudad"`
	Activo    bool      `gorm:"column:activo;not null" json:"activo"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

// TableName overrides the table name.
func (Inmobiliaria) TableName() string {
	return "inmobiliarias"
}

// Columns lists the columns the panel relies on.
func (Inmobiliaria) Columns() []string {
	return []string{"id", "nit", "nombre", "codigo", "email", "telefono", "ciudad", "activo", "created_at", "updated_at"}
}
