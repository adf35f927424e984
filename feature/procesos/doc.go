// Package procesos exposes Redelex process lookups to the panel.
//
// Process data is never stored: every request goes to the Redelex API
// through core/redelex. Inmobiliaria users are scoped to the processes filed
// under their own NIT; administrators may look up any identification.
package procesos
