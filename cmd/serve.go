package cmd

import (
	"route-atlas/core/loader"
	"route-atlas/core/logger"
	"route-atlas/core/metrics"
	"route-atlas/core/middleware/auth"
	"route-atlas/core/middleware/rayid"
	"route-atlas/feature/catalog"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the output tables over HTTP",
	Long:  `Starts a read-only HTTP API over airports.csv and earthroutes.csv.`,
	RunE:  runServe,
}

func init() {
	RootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, cancel := signalContext(cmd.Context())
	defer cancel()

	cfg, logg, err := setup()
	if err != nil {
		return err
	}
	defer logg.Sync()

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true, // We log our own startup message
	})

	reg := metrics.NewRegistry()
	svc := catalog.NewService(cfg.Output.AirportsFile, cfg.Output.RoutesFile, cfg.Server.CacheTTL(), logg)

	mgr := loader.NewManager()
	mgr.Register(catalog.NewFeature(svc, reg))

	// RayID must be first to trace everything
	app.Use(rayid.New())

	app.Use(func(c *fiber.Ctx) error {
		l := logger.WithRayID(logg, c)
		l.Info("Request started",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
		)
		err := c.Next()
		if err != nil {
			l.Error("Request error", zap.Error(err))
		}
		return err
	})

	app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey, Skip: []string{"/metrics"}}))

	if err := mgr.LoadAll(app); err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		logg.Info("Starting server", zap.String("port", cfg.Server.Port))
		errCh <- app.Listen(cfg.Server.Address())
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logg.Info("Shutting down server...")
	return app.Shutdown()
}
