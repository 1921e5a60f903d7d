// Package database handles database connections and schema inspection.
//
// It wraps GORM to configure SQLite, MySQL or PostgreSQL connections from the
// application's configuration. The database is the optional relational target
// of the export command; the reconciliation pipeline itself never touches it.
//
// # Schema Inspection
//
// GetTableColumns lists the columns of a table so the export can verify that
// the destination tables carry every output column.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	columns, err := database.GetTableColumns(db, "routes")
package database
