package catalog

import (
	"route-atlas/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the catalog.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the catalog routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/airports", h.HandleListAirports)
	app.Get("/airports/:code", h.HandleGetAirport)
	app.Get("/routes/:id", h.HandleGetRoutes)
	app.Get("/report", h.HandleReport)
}

// HandleListAirports returns a page of the airport table.
func (h *Handler) HandleListAirports(c *fiber.Ctx) error {
	page, err := h.service.ListAirports(c.Context(), c.Query("country"), c.QueryInt("offset", 0), c.QueryInt("limit", 100))
	if err != nil {
		return h.fail(c, "Airport listing failed", err)
	}
	return c.JSON(page)
}

// HandleGetAirport returns the airport for a code.
func (h *Handler) HandleGetAirport(c *fiber.Ctx) error {
	code := c.Params("code")
	a, ok, err := h.service.GetAirport(c.Context(), code)
	if err != nil {
		return h.fail(c, "Airport lookup failed", err)
	}
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "airport not found",
			"code":  code,
		})
	}
	return c.JSON(a)
}

// HandleGetRoutes returns the routes for a route id.
func (h *Handler) HandleGetRoutes(c *fiber.Ctx) error {
	id := c.Params("id")
	rs, err := h.service.GetRoutes(c.Context(), id)
	if err != nil {
		return h.fail(c, "Route lookup failed", err)
	}
	if len(rs) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "route not found",
			"id":    id,
		})
	}
	return c.JSON(rs)
}

// HandleReport returns the dataset summary.
func (h *Handler) HandleReport(c *fiber.Ctx) error {
	summary, err := h.service.Summary(c.Context())
	if err != nil {
		return h.fail(c, "Report failed", err)
	}
	return c.JSON(summary)
}

func (h *Handler) fail(c *fiber.Ctx, msg string, err error) error {
	logger.WithRayID(h.service.logger, c).Error(msg, zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": err.Error(),
	})
}
