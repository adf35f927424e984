package models

import (
	"strings"
	"time"

	"redelex-panel/core/session"
)

// Usuario is a panel account.
type Usuario struct {
	ID           uint      `gorm:"column:id;primaryKey;autoIncrement"`
	Nombre       string    `gorm:"column:nombre;type:varchar(120);not null"`
	Email        string    `gorm:"column:email;type:varchar(160);uniqueIndex;not null"`
	PasswordHash string    `gorm:"column:password_hash;type:varchar(100);not null"`
	Rol          string    `gorm:"column:rol;type:varchar(30);not null"`
	Permisos     string    `gorm:"column:permisos;type:varchar(500)"` // comma separated
	Nit          string    `gorm:"column:nit;type:varchar(30)"`
	Activo       bool      `gorm:"column:activo;not null"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName overrides the table name.
func (Usuario) TableName() string {
	return "usuarios"
}

// Columns lists the columns the panel relies on.
func (Usuario) Columns() []string {
	return []string{"id", "nombre", "email", "password_hash", "rol", "permisos", "nit", "activo", "created_at", "updated_at"}
}

// PermissionList splits Permisos.
func (u Usuario) PermissionList() []string {
	out := []string{}
	for _, p := range strings.Split(u.Permisos, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// SetPermissions stores perms as a comma separated list.
func (u *Usuario) SetPermissions(perms []string) {
	u.Permisos = strings.Join(perms, ",")
}

// ToSessionUser converts the record into the canonical session user.
func (u Usuario) ToSessionUser() session.User {
	return session.Normalize(map[string]any{
		"id":       u.ID,
		"nombre":   u.Nombre,
		"email":    u.Email,
		"rol":      u.Rol,
		"permisos": u.PermissionList(),
		"nit":      u.Nit,
	})
}

// View is the JSON shape of a user returned by the API.
type View struct {
	ID        uint      `json:"id"`
	Nombre    string    `json:"nombre"`
	Email     string    `json:"email"`
	Rol       string    `json:"rol"`
	Permisos  []string  `json:"permisos"`
	Nit       string    `json:"nit,omitempty"`
	Activo    bool      `json:"activo"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToView strips the password hash.
func (u Usuario) ToView() View {
	return View{
		ID:        u.ID,
		Nombre:    u.Nombre,
		Email:     u.Email,
		Rol:       u.Rol,
		Permisos:  u.PermissionList(),
		Nit:       u.Nit,
		Activo:    u.Activo,
		CreatedAt: u.CreatedAt,
	}
}
