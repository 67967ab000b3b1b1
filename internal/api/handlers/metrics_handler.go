package handlers

import (
	"spendit-receipts/internal/dto"
	"spendit-receipts/pkg/middleware"

	"github.com/gofiber/fiber/v2"
)

// ConnReporter reports currently acquired pool connections.
type ConnReporter interface {
	ActiveConns() int32
}

type MetricsHandler struct {
	metrics *middleware.Metrics
	store   ConnReporter
}

func NewMetricsHandler(metrics *middleware.Metrics, store ConnReporter) *MetricsHandler {
	return &MetricsHandler{
		metrics: metrics,
		store:   store,
	}
}

// Metrics godoc
// @Summary Request counters
// @Tags monitoring
// @Produce json
// @Success 200 {object} dto.MetricsResponse
// @Router /metrics [get]
func (h *MetricsHandler) Metrics(c *fiber.Ctx) error {
	total, success, failed, avgMs := h.metrics.Snapshot()

	return c.JSON(dto.MetricsResponse{
		RequestsTotal:     total,
		RequestsSuccess:   success,
		RequestsFailed:    failed,
		AvgResponseTimeMs: avgMs,
		ActiveConnections: h.store.ActiveConns(),
	})
}
