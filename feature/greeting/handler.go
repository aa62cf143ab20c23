package greeting

import (
	"greeter/core/logger"
	"greeter/core/router"

	"github.com/gofiber/fiber/v2"
)

// Handler handles HTTP requests for the greeting.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the greeting route table.
func (h *Handler) Routes() router.Table {
	return router.Table{
		{Method: fiber.MethodGet, Path: "/", Handler: h.HandleRoot},
	}
}

// HandleRoot writes the greeting as plain text.
func (h *Handler) HandleRoot(c *fiber.Ctx) error {
	logger.WithRayID(h.service.logger, c).Debug("Serving greeting")
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.SendString(h.service.Message())
}
