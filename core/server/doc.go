// Package server holds the HTTP server configuration and constants.
//
// While the main application entry point handles the server startup, this package
// defines the configuration structures and valid values for server settings,
// such as the deployment environment and the CORS origins of the panel frontend.
//
// # Usage
//
// This package is embedded by core/config and read by cmd/start.go.
package server
