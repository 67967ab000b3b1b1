package middleware

import (
	"sync/atomic"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Metrics collects request counters exposed on /metrics. Counters are
// plain atomics; this service does not export to a monitoring system.
type Metrics struct {
	total     atomic.Int64
	success   atomic.Int64
	failed    atomic.Int64
	latencyMs atomic.Int64
}

func NewMetrics() *Metrics {
	return &Metrics{}
}

// Handler returns a fiber middleware that counts every request.
func (m *Metrics) Handler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		m.total.Add(1)
		m.latencyMs.Add(time.Since(start).Milliseconds())

		if err != nil || c.Response().StatusCode() >= fiber.StatusInternalServerError {
			m.failed.Add(1)
		} else {
			m.success.Add(1)
		}

		return err
	}
}

// Snapshot returns the current counter values and the average response
// time in milliseconds.
func (m *Metrics) Snapshot() (total, success, failed, avgMs int64) {
	total = m.total.Load()
	success = m.success.Load()
	failed = m.failed.Load()
	if total > 0 {
		avgMs = m.latencyMs.Load() / total
	}
	return total, success, failed, avgMs
}
