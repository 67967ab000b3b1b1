package handlers

import (
	"errors"

	"spendit-receipts/internal/repository"
	"spendit-receipts/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ReceiptHandler struct {
	receiptService *service.ReceiptService
	logger         *zap.Logger
}

func NewReceiptHandler(receiptService *service.ReceiptService, logger *zap.Logger) *ReceiptHandler {
	return &ReceiptHandler{
		receiptService: receiptService,
		logger:         logger,
	}
}

// UploadReceipt godoc
// @Summary Upload a receipt image
// @Description Upload a receipt image for analysis; the result is stored when the database is reachable
// @Tags receipts
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Receipt image (jpg, png, ...)"
// @Success 200 {object} dto.ReceiptResponse
// @Failure 400 {object} map[string]string
// @Router /api/receipts [post]
func (h *ReceiptHandler) UploadReceipt(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "file is required",
		})
	}

	upload := service.Upload{
		FileName:    file.Filename,
		ContentType: file.Header.Get("Content-Type"),
		Size:        file.Size,
	}

	result, err := h.receiptService.Intake(c.Context(), upload)
	if errors.Is(err, service.ErrInvalidUpload) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "only image files can be uploaded",
		})
	}
	if err != nil {
		h.logger.Error("Receipt intake failed",
			zap.String("file_name", file.Filename),
			zap.Error(err),
		)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to process receipt",
		})
	}

	return c.JSON(result)
}

// GetReceipt godoc
// @Summary Get a receipt by id
// @Description Returns the receipt and its line items; 404 only when storage confirms the id is absent
// @Tags receipts
// @Produce json
// @Param id path string true "Receipt ID"
// @Success 200 {object} dto.ReceiptDetailResponse
// @Failure 404 {object} map[string]string
// @Router /api/receipts/{id} [get]
func (h *ReceiptHandler) GetReceipt(c *fiber.Ctx) error {
	id := c.Params("id")

	result, err := h.receiptService.Retrieve(c.Context(), id)
	if errors.Is(err, repository.ErrReceiptNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "receipt not found",
		})
	}
	if err != nil {
		h.logger.Error("Receipt retrieval failed",
			zap.String("receipt_id", id),
			zap.Error(err),
		)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to retrieve receipt",
		})
	}

	return c.JSON(result)
}
