// Package config provides configuration management for the Redelex panel.
//
// It uses Viper for environment variables and godotenv for a local .env file.
// Defaults come from the `default` struct tags of each section.
//
// # Configuration Structure
//
//   - Server: HTTP port, CORS origins, environment
//   - Log: level and format
//   - Database: driver (mysql, sqlite) and connection details
//   - Storage: S3/MinIO report archive
//   - Session: Redis address and session TTL
//   - Redelex: upstream process API endpoint and credentials
//
// Environment keys are the upper-cased path with underscores, e.g. SESSION_TTL_MINUTES.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
