// Package export turns in-memory datasets into downloadable documents.
//
// A Table is the row-and-column projection of whatever the screen is showing
// (users, inmobiliarias, processes). Render produces an XLSX workbook with
// excelize or a landscape A4 PDF with fpdf. Download wires that into a Fiber
// response, and Archive optionally keeps a copy in S3/MinIO under reports/.
package export
