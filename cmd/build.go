package cmd

import (
	"context"
	"fmt"
	"time"

	"route-atlas/core/config"
	"route-atlas/core/metrics"
	"route-atlas/core/storage"
	"route-atlas/feature/backfill"
	"route-atlas/feature/openflights"
	"route-atlas/feature/pipeline"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	buildSkipDownload bool
	buildInterval     time.Duration
	buildWorkbook     string
	buildMetricsFile  string
)

// buildCmd runs the full reconciliation.
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build airports.csv and earthroutes.csv from the OpenFlights feeds",
	Long: `Downloads the airport registry and route feed, looks up airports that routes
reference but the registry lacks, merges the override tables and writes both
output tables.

Lookups are cached one file per airport code. Interrupting a build is safe:
the next build skips every code already cached.

Examples:
  # Full build
  build

  # Reuse the feeds already downloaded, also write a workbook
  build --skip-download --workbook atlas.xlsx`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().BoolVar(&buildSkipDownload, "skip-download", false, "Reuse the feeds already present in the data directory")
	buildCmd.Flags().DurationVar(&buildInterval, "interval", 0, "Minimum delay between two lookups (default from config)")
	buildCmd.Flags().StringVar(&buildWorkbook, "workbook", "", "Also write both tables to this XLSX file")
	buildCmd.Flags().StringVar(&buildMetricsFile, "metrics-file", "", "Write run metrics to this Prometheus textfile")

	RootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	ctx, cancel := signalContext(cmd.Context())
	defer cancel()

	cfg, l, err := setup()
	if err != nil {
		return err
	}
	defer l.Sync()

	opts := buildOptions(cfg)
	if cmd.Flags().Changed("skip-download") {
		opts.SkipDownload = buildSkipDownload
	}
	if buildInterval > 0 {
		opts.Interval = buildInterval
	}
	if buildWorkbook != "" {
		opts.WorkbookFile = buildWorkbook
	}
	if buildMetricsFile != "" {
		opts.MetricsFile = buildMetricsFile
	}

	store, err := lookupStore(ctx, cfg, l)
	if err != nil {
		return err
	}

	timeout := time.Duration(cfg.Source.TimeoutSeconds) * time.Second
	p := pipeline.New(opts,
		openflights.NewDownloader(timeout, l),
		store,
		openflights.NewLookupClient(cfg.Source.LookupURL, timeout),
		metrics.NewRegistry(),
		l)

	res, err := p.Run(ctx)
	if err != nil {
		return fmt.Errorf("build failed: %w", err)
	}

	l.Info("Build complete",
		zap.String("run_id", res.Report.RunID),
		zap.Int("airports", res.Report.MergedAirports),
		zap.Int("routes", res.Report.OutputRoutes))
	return nil
}

// buildOptions maps the configuration onto pipeline options.
func buildOptions(cfg *config.Config) pipeline.Options {
	return pipeline.Options{
		AirportsURL:       cfg.Source.AirportsURL,
		RoutesURL:         cfg.Source.RoutesURL,
		DataDir:           cfg.Source.DataDir,
		SkipDownload:      cfg.Source.SkipDownload,
		Interval:          time.Duration(cfg.Backfill.IntervalMs) * time.Millisecond,
		AirportsFile:      cfg.Output.AirportsFile,
		RoutesFile:        cfg.Output.RoutesFile,
		ExtraAirportsFile: cfg.Output.ExtraAirportsFile,
		ExtraRoutesFile:   cfg.Output.ExtraRoutesFile,
		WorkbookFile:      cfg.Output.WorkbookFile,
		MetricsFile:       cfg.Output.MetricsFile,
	}
}

// lookupStore builds the configured lookup cache.
func lookupStore(ctx context.Context, cfg *config.Config, l *zap.Logger) (backfill.Store, error) {
	switch cfg.Backfill.Store {
	case config.StoreFile, "":
		return backfill.NewFileStore(cfg.Source.DataDir), nil
	case config.StoreBucket:
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to storage: %w", err)
		}
		s := backfill.NewBucketStore(client, cfg.Storage.Bucket, cfg.Backfill.Prefix)
		if err := s.EnsureBucket(ctx); err != nil {
			return nil, err
		}
		l.Info("Caching lookups in bucket",
			zap.String("bucket", cfg.Storage.Bucket),
			zap.String("prefix", cfg.Backfill.Prefix))
		return s, nil
	default:
		return nil, fmt.Errorf("unsupported backfill store: %q", cfg.Backfill.Store)
	}
}
