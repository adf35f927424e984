// Package middleware contains HTTP middleware for the Fiber application.
//
// It provides cross-cutting concerns that sit between the request and the handler.
//
// # Components
//
//   - Auth: resolves the bearer token into a session user and clears sessions
//     whose token is no longer valid.
//   - RayID: Generates a unique Request ID (RayID) for every incoming request,
//     injecting it into the context and response headers for tracing.
//
// Role and permission checks live in core/access; this package only
// establishes who is calling.
package middleware
