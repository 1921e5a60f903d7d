// Package config provides configuration management for route-atlas.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file. Defaults live next to each field in a
// `default` struct tag.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Source: OpenFlights feed URLs, lookup API URL, local data directory
//   - Backfill: lookup throttle interval and cache store selection
//   - Output: override tables and generated artifacts
//   - Server: catalog API port and API key
//   - Database: relational export target
//   - Storage: S3/MinIO credentials and bucket settings
//   - Log: Logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Source.DataDir)
package config
