package cmd

import (
	"fmt"

	"route-atlas/core/database"
	"route-atlas/feature/airports"
	"route-atlas/feature/export"
	"route-atlas/feature/routes"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	exportBatchSize int
	exportWorkbook  string
)

// exportCmd loads the output tables into the configured database.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Load airports.csv and earthroutes.csv into the database",
	Long: `Migrates the airports and routes tables, then replaces their contents with the
current output tables in a single transaction.

Examples:
  # Load into the configured database (sqlite by default)
  export

  # Also write the tables to a workbook
  export --workbook atlas.xlsx`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().IntVar(&exportBatchSize, "batch-size", export.DefaultBatchSize, "Rows per INSERT statement")
	exportCmd.Flags().StringVar(&exportWorkbook, "workbook", "", "Also write both tables to this XLSX file")

	RootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx, cancel := signalContext(cmd.Context())
	defer cancel()

	cfg, l, err := setup()
	if err != nil {
		return err
	}
	defer l.Sync()

	table, err := airports.ReadTable(cfg.Output.AirportsFile, "")
	if err != nil {
		return fmt.Errorf("failed to read airports: %w", err)
	}
	rs, err := routes.ReadTable(cfg.Output.RoutesFile)
	if err != nil {
		return fmt.Errorf("failed to read routes: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return err
	}

	counts, err := export.NewLoader(db, exportBatchSize, l).Load(ctx, table, rs)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	if exportWorkbook != "" {
		if err := export.WriteWorkbook(exportWorkbook, table, rs); err != nil {
			return err
		}
		l.Info("Wrote workbook", zap.String("path", exportWorkbook))
	}

	l.Info("Export complete",
		zap.String("driver", cfg.Database.Driver),
		zap.Int64("airports", counts.Airports),
		zap.Int64("routes", counts.Routes))
	return nil
}
