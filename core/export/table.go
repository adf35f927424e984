package export

import (
	"fmt"
	"strings"
	"time"
)

// Format is a downloadable document format.
type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatPDF  Format = "pdf"
)

// ParseFormat accepts "xlsx"/"excel" and "pdf", case-insensitive.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "xlsx", "excel", "":
		return FormatXLSX, nil
	case "pdf":
		return FormatPDF, nil
	default:
		return "", fmt.Errorf("unsupported export format: %s", s)
	}
}

// ContentType returns the MIME type of the format.
func (f Format) ContentType() string {
	if f == FormatPDF {
		return "application/pdf"
	}
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// Table is a row-and-column projection of an in-memory dataset.
type Table struct {
	Title       string
	Columns     []string
	Rows        [][]string
	GeneratedAt time.Time
}

// Project builds a Table from items using row to extract each line.
func Project[T any](title string, columns []string, items []T, row func(T) []string) Table {
	rows := make([][]string, 0, len(items))
	for _, it := range items {
		rows = append(rows, row(it))
	}
	return Table{Title: title, Columns: columns, Rows: rows, GeneratedAt: time.Now()}
}

// Render produces the document bytes for t in format f.
func Render(t Table, f Format) ([]byte, error) {
	switch f {
	case FormatXLSX:
		return renderXLSX(t)
	case FormatPDF:
		return renderPDF(t)
	default:
		return nil, fmt.Errorf("unsupported export format: %s", f)
	}
}

// FileName returns a download name like "inmobiliarias_20240102_150405.xlsx".
func FileName(base string, f Format, at time.Time) string {
	base = strings.ToLower(strings.ReplaceAll(strings.TrimSpace(base), " ", "_"))
	if base == "" {
		base = "reporte"
	}
	return fmt.Sprintf("%s_%s.%s", base, at.Format("20060102_150405"), f)
}
