// Package reportes lists, downloads and removes the Excel/PDF reports kept
// in object storage by the export endpoints of the other features.
package reportes
