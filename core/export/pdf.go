package export

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
)

const (
	pdfRowHeight  = 6.0
	pdfFontSize   = 8.0
	pdfTitleSize  = 14.0
	pdfFontFamily = "Helvetica"
)

func renderPDF(t Table) ([]byte, error) {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetTitle(t.Title, true)
	pdf.SetAutoPageBreak(true, 12)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pageW, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	colW := pageW - left - right
	if len(t.Columns) > 0 {
		colW /= float64(len(t.Columns))
	}

	header := func() {
		pdf.SetFont(pdfFontFamily, "B", pdfFontSize)
		pdf.SetFillColor(31, 78, 120)
		pdf.SetTextColor(255, 255, 255)
		for _, col := range t.Columns {
			pdf.CellFormat(colW, pdfRowHeight+1, fit(pdf, tr(col), colW), "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont(pdfFontFamily, "", pdfFontSize)
		pdf.SetTextColor(0, 0, 0)
	}

	pdf.SetHeaderFunc(func() {
		if pdf.PageNo() > 1 {
			header()
		}
	})
	pdf.SetFooterFunc(func() {
		pdf.SetY(-10)
		pdf.SetFont(pdfFontFamily, "I", 7)
		pdf.CellFormat(0, 5, fmt.Sprintf("%s - pag. %d", t.GeneratedAt.Format("2006-01-02 15:04"), pdf.PageNo()), "", 0, "R", false, 0, "")
	})

	pdf.AddPage()
	pdf.SetFont(pdfFontFamily, "B", pdfTitleSize)
	pdf.CellFormat(0, 10, tr(t.Title), "", 1, "L", false, 0, "")
	pdf.Ln(2)
	header()

	for i, row := range t.Rows {
		fill := i%2 == 1
		pdf.SetFillColor(242, 242, 242)
		for c := range t.Columns {
			value := ""
			if c < len(row) {
				value = row[c]
			}
			pdf.CellFormat(colW, pdfRowHeight, fit(pdf, tr(value), colW), "1", 0, "L", fill, 0, "")
		}
		pdf.Ln(-1)
	}

	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("failed to build pdf: %w", err)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// fit truncates s so it fits in a cell of width w, adding an ellipsis.
func fit(pdf *fpdf.Fpdf, s string, w float64) string {
	limit := w - 2
	if pdf.GetStringWidth(s) <= limit {
		return s
	}
	r := []byte(s)
	for len(r) > 0 && pdf.GetStringWidth(string(r)+"...") > limit {
		r = r[:len(r)-1]
	}
	return string(r) + "..."
}
