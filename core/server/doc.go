// Package server holds the HTTP server configuration.
//
// While the serve command handles the server startup, this package defines the
// configuration structure for server settings.
//
// # Configuration
//
// The Config struct defines the HTTP port, the API key and how long the catalog
// caches the output tables.
//
// # Usage
//
// This package is embedded by core/config and read by the serve command and the
// catalog feature.
package server
