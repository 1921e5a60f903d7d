package catalog

import (
	"route-atlas/core/metrics"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
	metrics *metrics.Registry
}

// NewFeature creates the catalog feature. reg, when set, is served on /metrics.
func NewFeature(service *Service, reg *metrics.Registry) *Feature {
	return &Feature{service: service, handler: NewHandler(service), metrics: reg}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "catalog"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	if f.metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(f.metrics.Handler()))
	}
	return nil
}
