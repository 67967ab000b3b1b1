package handlers

import (
	"spendit-receipts/internal/service"

	"github.com/gofiber/fiber/v2"
)

type HealthHandler struct {
	healthService *service.HealthService
}

func NewHealthHandler(healthService *service.HealthService) *HealthHandler {
	return &HealthHandler{
		healthService: healthService,
	}
}

// Health godoc
// @Summary Health check
// @Description Service liveness plus database connectivity; always 200
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return c.JSON(h.healthService.Check(c.Context()))
}

// Ready godoc
// @Summary Readiness check
// @Tags health
// @Produce json
// @Success 200 {object} dto.ReadyResponse
// @Router /ready [get]
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	return c.JSON(h.healthService.Ready())
}
