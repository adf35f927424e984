// Package usuarios implements panel account management.
//
// Accounts live in the "usuarios" table (GORM). Passwords are stored as
// bcrypt hashes. Only administrators reach these routes:
//
//   - GET    /panel/usuarios          : list (q, rol, page, size)
//   - POST   /panel/usuarios          : create
//   - GET    /panel/usuarios/:id      : detail
//   - PUT    /panel/usuarios/:id      : partial update
//   - DELETE /panel/usuarios/:id      : delete (not yourself, not the last admin)
//   - GET    /panel/usuarios/export   : xlsx / pdf download
//
// The Service is also used by the auth feature to verify credentials and to
// register new inmobiliaria accounts.
package usuarios
