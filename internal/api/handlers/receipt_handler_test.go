package handlers_test

import (
	"errors"
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

var _ = Describe("HTTP surface", func() {
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

	Describe("POST /api/receipts", func() {
		It("accepts an image upload and returns a tagged result", func() {
			resp, err := app.Test(newUploadRequest("receipt.jpg", "image/jpeg"))
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusOK))

			var result dto.ReceiptResponse
			decodeBody(resp, &result)
			Expect(result.ReceiptID).To(MatchRegexp(`^RCP-\d{8}-\d{6}-[0-9a-f]{8}$`))
			Expect(result.MerchantName).To(Equal("Sample Merchant"))
			Expect(result.TotalAmount).To(Equal(15000.0))
			Expect(result.Provenance).To(Equal("persisted"))
		})

		It("rejects non-image uploads with 400", func() {
			resp, err := app.Test(newUploadRequest("notes.txt", "text/plain"))
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))

			var body map[string]string
			decodeBody(resp, &body)
			Expect(body).To(HaveKey("error"))
		})

		It("rejects requests without a file part", func() {
			req := httptest.NewRequest(http.MethodPost, "/api/receipts", nil)
			resp, err := app.Test(req)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))
		})

		It("still answers 200 with a synthetic result when the save fails", func() {
			store.saveErr = errors.New("write: broken pipe")

			resp, err := app.Test(newUploadRequest("receipt.jpg", "image/jpeg"))
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusOK))

			var result dto.ReceiptResponse
			decodeBody(resp, &result)
			Expect(result.Provenance).To(Equal("synthetic"))
		})
	})

	Describe("GET /api/receipts/:id", func() {
		It("round-trips an uploaded receipt", func() {
			resp, err := app.Test(newUploadRequest("receipt.jpg", "image/jpeg"))
			Expect(err).NotTo(HaveOccurred())
			var uploaded dto.ReceiptResponse
			decodeBody(resp, &uploaded)

			resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/receipts/"+uploaded.ReceiptID, nil))
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusOK))

			var result dto.ReceiptDetailResponse
			decodeBody(resp, &result)
			Expect(result.ReceiptID).To(Equal(uploaded.ReceiptID))
			Expect(result.Items).To(HaveLen(2))
			Expect(result.Items[0].Name).To(Equal("Americano"))
			Expect(result.Provenance).To(Equal("persisted"))
		})

		It("returns 404 for an unknown id while storage is available", func() {
			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/receipts/RCP-20240101-000000-00000000", nil))
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusNotFound))
		})

		It("serves a synthetic placeholder when storage is unavailable", func() {
			store.available = false

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/receipts/RCP-anything", nil))
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusOK))

			var result dto.ReceiptDetailResponse
			decodeBody(resp, &result)
			Expect(result.Provenance).To(Equal("synthetic"))
			Expect(result.MerchantName).To(ContainSubstring("placeholder"))
		})
	})
})
