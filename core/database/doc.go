// Package database handles database connections and schema inspection.
//
// It wraps GORM to open either MySQL (production) or SQLite (local runs and
// tests) based on the application's configuration.
//
// # Connect
//
// Connect builds the dialector for the configured driver, applies pool
// settings and pings the database within the configured timeout.
//
// # Schema Inspection
//
// GetTableColumns and MissingColumns let the "schema" command verify that the
// panel tables carry the columns the features expect.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	missing, err := database.MissingColumns(db, "usuarios", []string{"email", "rol"})
package database
