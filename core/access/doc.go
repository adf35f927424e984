// Package access gates route activation by session, role and permission.
//
// Every activation attempt goes through a small state machine:
//
//	Unauthenticated -> (login redirect)
//	Checking        -> Allowed | Denied (role fallback redirect + message)
//
// CheckRole matches the session role exactly against an allow-list.
// CheckPermission looks for any of the required permissions; the admin role
// holds all of them implicitly.
//
// Filter exposes the same rules as Fiber middleware and is used by the shell
// to hide menu items the user cannot open.
package access
