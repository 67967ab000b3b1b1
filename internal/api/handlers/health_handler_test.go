package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"spendit-receipts/internal/api"
	"spendit-receipts/internal/api/handlers"
	"spendit-receipts/internal/dto"
	"spendit-receipts/internal/service"
	"spendit-receipts/pkg/middleware"
)

var _ = Describe("Health and monitoring endpoints", func() {
	var (
		store *fakeStore
		app   *fiber.App
	)

	BeforeEach(func() {
		store = newFakeStore()
		logger := zap.NewNop()

		receiptService := service.NewReceiptService(store, service.NewStaticAnalyzer(), logger)
		healthService := service.NewHealthService(store, 2*time.Second, "1.0.0", logger)

		metrics := middleware.NewMetrics()
		app = api.SetupRouter(
			handlers.NewReceiptHandler(receiptService, logger),
			handlers.NewHealthHandler(healthService),
			handlers.NewMetricsHandler(metrics, store),
			metrics,
		)
	})

	Describe("GET /health", func() {
		It("reports healthy with storage up", func() {
			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusOK))

			var result dto.HealthResponse
			decodeBody(resp, &result)
			Expect(result.Status).To(Equal("healthy"))
			Expect(result.Database).To(Equal("connected"))
			Expect(result.Version).To(Equal("1.0.0"))
			Expect(result.Timestamp).NotTo(BeEmpty())
		})

		It("reports degraded with storage down, still with 200", func() {
			store.available = false

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusOK))

			var result dto.HealthResponse
			decodeBody(resp, &result)
			Expect(result.Status).To(Equal("degraded"))
			Expect(result.Database).To(Equal("not configured"))
		})
	})

	Describe("GET /ready", func() {
		It("always reports ready", func() {
			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ready", nil))
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusOK))

			var result dto.ReadyResponse
			decodeBody(resp, &result)
			Expect(result.Status).To(Equal("ready"))
		})
	})

	Describe("GET /metrics", func() {
		It("counts handled requests", func() {
			_, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
			Expect(err).NotTo(HaveOccurred())

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil))
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusOK))

			var result dto.MetricsResponse
			decodeBody(resp, &result)
			Expect(result.RequestsTotal).To(BeNumerically(">=", 1))
			Expect(result.RequestsSuccess).To(BeNumerically(">=", 1))
			Expect(result.ActiveConnections).To(BeZero())
		})
	})
})
