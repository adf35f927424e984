package session

import (
	"strings"

	"redelex-panel/core/utils"
)

// Known roles.
const (
	RoleAdmin        = "admin"
	RoleInmobiliaria = "inmobiliaria"
)

// User is the canonical authenticated user carried by a session.
type User struct {
	ID             uint     `json:"id"`
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	Role           string   `json:"role"`
	Permissions    []string `json:"permissions"`
	Identification string   `json:"identification,omitempty"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// HasPermission reports whether the user holds perm. Admins hold every permission.
func (u *User) HasPermission(perm string) bool {
	if u == nil {
		return false
	}
	if u.IsAdmin() {
		return true
	}
	for _, p := range u.Permissions {
		if p == perm {
			return true
		}
	}
	return false
}

// Normalize builds a User from a loosely shaped record such as a decoded
// JSON payload from the Redelex backend, where the same field may appear as
// rol/role, nombre/name, permisos/permissions and so on.
func Normalize(raw map[string]any) User {
	u := User{
		ID:             uint(utils.ToInt(first(raw, "id", "_id", "userId", "user_id"))),
		Name:           utils.ToString(first(raw, "name", "nombre", "fullName")),
		Email:          strings.ToLower(utils.ToString(first(raw, "email", "correo"))),
		Role:           utils.ToString(first(raw, "role", "rol")),
		Identification: utils.ToString(first(raw, "identification", "identificacion", "nit")),
		Permissions:    []string{},
	}

	switch perms := first(raw, "permissions", "permisos").(type) {
	case []string:
		u.Permissions = append(u.Permissions, perms...)
	case []any:
		for _, p := range perms {
			if s := utils.ToString(p); s != "" {
				u.Permissions = append(u.Permissions, s)
			}
		}
	case string:
		for _, p := range strings.Split(perms, ",") {
			if p = strings.TrimSpace(p); p != "" {
				u.Permissions = append(u.Permissions, p)
			}
		}
	}

	return u
}

// first returns the first non-empty value among keys.
func first(raw map[string]any, keys ...string) any {
	for _, k := range keys {
		v, ok := raw[k]
		if !ok || v == nil {
			continue
		}
		if s, isStr := v.(string); isStr && s == "" {
			continue
		}
		return v
	}
	return ""
}
