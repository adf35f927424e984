package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Page is one slice of a filtered collection.
type Page[T any] struct {
	Items      []T `json:"items"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	Size       int `json:"size"`
	TotalPages int `json:"totalPages"`
}

// Filter returns the items for which keep is true, preserving order.
func Filter[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}

// Paginate returns page (1-based) of items. Out of range pages are empty;
// page and size are clamped to sane values.
func Paginate[T any](items []T, page, size int) Page[T] {
	if size <= 0 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	if page <= 0 {
		page = 1
	}

	total := len(items)
	totalPages := (total + size - 1) / size

	start := total
	if page <= totalPages {
		start = (page - 1) * size
	}
	end := start + size
	if end > total {
		end = total
	}

	return Page[T]{
		Items:      append([]T{}, items[start:end]...),
		Total:      total,
		Page:       page,
		Size:       size,
		TotalPages: totalPages,
	}
}

// Fold lowercases s and strips diacritics so "Bogotá" matches "bogota".
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}

// MatchesAny reports whether query, folded, is contained in any of fields.
// An empty query matches everything.
func MatchesAny(query string, fields ...string) bool {
	q := Fold(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(Fold(f), q) {
			return true
		}
	}
	return false
}
