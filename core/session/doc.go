// Package session owns the authenticated user model and its persistence.
//
// User is the single normalized shape of a logged in user. Records coming
// from outside (the Redelex backend, older stored payloads) go through
// Normalize once, at the authentication boundary, so the rest of the code
// never has to guess between "rol" and "role".
//
// Sessions are stored in Redis under an opaque bearer token, with a sliding
// TTL. The Store interface allows the auth middleware and handlers to be
// tested with the mock in session/mocks.
package session
