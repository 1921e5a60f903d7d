package export

import (
	"context"
	"fmt"

	"route-atlas/core/database"
	"route-atlas/feature/airports"
	"route-atlas/feature/routes"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DefaultBatchSize is the number of rows per INSERT.
const DefaultBatchSize = 500

// Counts reports how many rows a load inserted.
type Counts struct {
	Airports int64
	Routes   int64
}

// Loader replaces the contents of the airports and routes tables.
type Loader struct {
	db        *gorm.DB
	batchSize int
	logger    *zap.Logger
}

// NewLoader creates a loader. A non-positive batchSize uses DefaultBatchSize.
func NewLoader(db *gorm.DB, batchSize int, logger *zap.Logger) *Loader {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	return &Loader{db: db, batchSize: batchSize, logger: logger}
}

// Migrate creates or updates both tables and verifies their columns.
func (l *Loader) Migrate(ctx context.Context) error {
	if err := l.db.WithContext(ctx).AutoMigrate(&AirportRow{}, &RouteRow{}); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}

	for table, expected := range map[string][]string{
		AirportRow{}.TableName(): airportColumns,
		RouteRow{}.TableName():   routeColumns,
	} {
		missing, err := database.MissingColumns(l.db.WithContext(ctx), table, expected)
		if err != nil {
			return fmt.Errorf("failed to inspect %s: %w", table, err)
		}
		if len(missing) > 0 {
			return fmt.Errorf("table %s is missing columns %v", table, missing)
		}
	}
	return nil
}

// Load migrates the schema, then replaces both tables in one transaction.
func (l *Loader) Load(ctx context.Context, table []airports.Airport, rs []routes.Route) (Counts, error) {
	if err := l.Migrate(ctx); err != nil {
		return Counts{}, err
	}

	airportRows := make([]AirportRow, len(table))
	for i, a := range table {
		airportRows[i] = NewAirportRow(a)
	}
	routeRows := make([]RouteRow, len(rs))
	for i, r := range rs {
		routeRows[i] = NewRouteRow(r)
	}

	var counts Counts
	err := l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&AirportRow{}).Error; err != nil {
			return fmt.Errorf("failed to clear airports: %w", err)
		}
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&RouteRow{}).Error; err != nil {
			return fmt.Errorf("failed to clear routes: %w", err)
		}

		if len(airportRows) > 0 {
			res := tx.CreateInBatches(airportRows, l.batchSize)
			if res.Error != nil {
				return fmt.Errorf("failed to insert airports: %w", res.Error)
			}
			counts.Airports = res.RowsAffected
		}
		if len(routeRows) > 0 {
			res := tx.CreateInBatches(routeRows, l.batchSize)
			if res.Error != nil {
				return fmt.Errorf("failed to insert routes: %w", res.Error)
			}
			counts.Routes = res.RowsAffected
		}
		return nil
	})
	if err != nil {
		return Counts{}, err
	}

	l.logger.Info("Loaded tables",
		zap.String("driver", l.db.Dialector.Name()),
		zap.Int64("airports", counts.Airports),
		zap.Int64("routes", counts.Routes))
	return counts, nil
}
