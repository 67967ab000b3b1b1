package service

import (
	"spendit-receipts/internal/dto"
	"spendit-receipts/internal/models"
)

// Degraded-mode policy: when storage is unreachable the service still
// answers, with results that are unmistakably labeled as synthetic.

// synthesizeIntake keeps the computed analysis for an intake whose write
// did not happen and labels the response with the storage reason.
func (s *ReceiptService) synthesizeIntake(receipt *models.Receipt, message string) *dto.ReceiptResponse {
	return &dto.ReceiptResponse{
		ReceiptID:    receipt.ID,
		MerchantName: receipt.MerchantName,
		TotalAmount:  receipt.TotalAmount,
		Date:         receipt.ReceiptDate.Format("2006-01-02"),
		Status:       string(receipt.Status),
		Message:      message,
		Provenance:   string(models.ProvenanceSynthetic),
	}
}

// synthesizeReceipt produces the canned placeholder served for reads while
// storage is unavailable.
func (s *ReceiptService) synthesizeReceipt(id string) *dto.ReceiptDetailResponse {
	return &dto.ReceiptDetailResponse{
		ReceiptID:    id,
		MerchantName: "Sample Merchant (placeholder)",
		TotalAmount:  15000.0,
		Date:         s.timeSource.Now().Format("2006-01-02"),
		Status:       string(models.StatusProcessed),
		Items: []dto.LineItemResponse{
			{Name: "Americano", Quantity: 2, Price: 4500.0},
			{Name: "Sandwich", Quantity: 1, Price: 6000.0},
		},
		Provenance: string(models.ProvenanceSynthetic),
	}
}
