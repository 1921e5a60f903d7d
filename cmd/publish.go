package cmd

import (
	"fmt"

	"route-atlas/core/storage"
	"route-atlas/feature/publish"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var publishPrefix string

// publishCmd uploads the output tables to the configured bucket.
var publishCmd = &cobra.Command{
	Use:   "publish [extra files...]",
	Short: "Upload airports.csv and earthroutes.csv to object storage",
	Long: `Uploads both output tables, and any extra files given as arguments, to the
configured bucket. The bucket is created when it does not exist.`,
	RunE: runPublish,
}

func init() {
	publishCmd.Flags().StringVar(&publishPrefix, "prefix", "", "Object key prefix")

	RootCmd.AddCommand(publishCmd)
}

func runPublish(cmd *cobra.Command, args []string) error {
	ctx, cancel := signalContext(cmd.Context())
	defer cancel()

	cfg, l, err := setup()
	if err != nil {
		return err
	}
	defer l.Sync()

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to connect to storage: %w", err)
	}

	files := append([]string{cfg.Output.AirportsFile, cfg.Output.RoutesFile}, args...)
	uploads, err := publish.NewPublisher(client, cfg.Storage.Bucket, publishPrefix, l).Publish(ctx, files...)
	if err != nil {
		return fmt.Errorf("publish failed: %w", err)
	}

	l.Info("Publish complete", zap.String("bucket", cfg.Storage.Bucket), zap.Int("files", len(uploads)))
	return nil
}
