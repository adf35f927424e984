// Package inmobiliarias manages the real-estate companies the firm works for.
//
// Records are keyed by NIT and stored in the "inmobiliarias" table. The list
// endpoint filters in memory (free text, city, active flag) and pages the
// result; the export endpoint renders the same selection to Excel or PDF.
package inmobiliarias
