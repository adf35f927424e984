// Package utils provides small shared helpers.
//
// Conversion helpers (ToInt, ToString, ToBool) tame loosely typed values
// coming from JSON payloads and query strings. Filter, Paginate and
// MatchesAny implement the list screens' search and paging over in-memory
// collections.
package utils
