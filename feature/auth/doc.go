// Package auth opens and closes panel sessions.
//
// Login checks the credentials against the usuarios table and stores the
// normalised session user under a random uuid token in the session store.
// The token is sent back as a bearer token on later requests and resolved
// by the auth middleware. Registration always creates inmobiliaria accounts.
package auth
