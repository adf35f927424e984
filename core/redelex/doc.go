// Package redelex is the HTTP client for the upstream Redelex process API.
//
// The panel never persists processes; lookups go to Redelex with the
// configured API key and a per-call timeout. 404 and 401/403 answers are
// mapped to ErrNotFound and ErrUnauthorized.
//
// CachedClient sits in front of the HTTP client: answers are kept for a
// short TTL and concurrent identical lookups share one upstream call.
package redelex
