package access

import (
	"slices"

	"redelex-panel/core/session"
)

// LoginRoute is where unauthenticated users are sent.
const LoginRoute = "/auth/login"

// State is the outcome of one route activation attempt.
type State int

const (
	Unauthenticated State = iota
	Checking
	Allowed
	Denied
)

func (s State) String() string {
	switch s {
	case Unauthenticated:
		return "unauthenticated"
	case Checking:
		return "checking"
	case Allowed:
		return "allowed"
	case Denied:
		return "denied"
	default:
		return "unknown"
	}
}

// Rule lists what a route requires. Empty lists impose nothing.
type Rule struct {
	Roles       []string
	Permissions []string
}

// Decision is the terminal state of a guard evaluation.
type Decision struct {
	State    State  `json:"-"`
	Redirect string `json:"redirect,omitempty"`
	Message  string `json:"message,omitempty"`
}

// Allowed reports whether the route may proceed.
func (d Decision) Allowed() bool {
	return d.State == Allowed
}

const (
	msgLogin       = "Debes iniciar sesión para continuar"
	msgRole        = "No tienes permisos para acceder a esta sección"
	msgPermissions = "No cuentas con los permisos necesarios para esta acción"
)

// FallbackRoute returns the default landing route for a role.
func FallbackRoute(role string) string {
	switch role {
	case session.RoleAdmin:
		return "/panel/consultas/consultar-proceso"
	case session.RoleInmobiliaria:
		return "/panel/consultas/mis-procesos"
	default:
		return LoginRoute
	}
}

// CheckRole allows the user if their role is in roles (exact, case-sensitive).
// A nil user is denied.
func CheckRole(user *session.User, roles []string) Decision {
	if user == nil || !slices.Contains(roles, user.Role) {
		return deny(user, msgRole)
	}
	return Decision{State: Allowed}
}

// CheckPermission allows the user if they hold any of perms.
// Admins hold every permission.
func CheckPermission(user *session.User, perms []string) Decision {
	if user == nil {
		return deny(user, msgPermissions)
	}
	if user.IsAdmin() {
		return Decision{State: Allowed}
	}
	for _, p := range perms {
		if user.HasPermission(p) {
			return Decision{State: Allowed}
		}
	}
	return deny(user, msgPermissions)
}

// Evaluate runs one activation attempt through
// Unauthenticated -> Checking -> {Allowed, Denied}.
func Evaluate(user *session.User, rule Rule) Decision {
	if user == nil {
		return Decision{State: Unauthenticated, Redirect: LoginRoute, Message: msgLogin}
	}

	// Checking
	if len(rule.Roles) > 0 {
		if d := CheckRole(user, rule.Roles); !d.Allowed() {
			return d
		}
	}
	if len(rule.Permissions) > 0 {
		if d := CheckPermission(user, rule.Permissions); !d.Allowed() {
			return d
		}
	}
	return Decision{State: Allowed}
}

func deny(user *session.User, msg string) Decision {
	role := ""
	if user != nil {
		role = user.Role
	}
	return Decision{State: Denied, Redirect: FallbackRoute(role), Message: msg}
}
