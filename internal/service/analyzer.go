package service

import (
	"context"
	"time"

	"spendit-receipts/internal/models"
)

// StaticAnalyzer stands in for the extraction pipeline (object storage,
// OCR, queueing) and returns the same analysis for every upload. Swapping
// in a real engine only requires another Analyzer implementation.
type StaticAnalyzer struct{}

func NewStaticAnalyzer() *StaticAnalyzer {
	return &StaticAnalyzer{}
}

func (a *StaticAnalyzer) Analyze(_ context.Context, _ Upload) (*models.Analysis, error) {
	now := time.Now()
	return &models.Analysis{
		MerchantName: "Sample Merchant",
		TotalAmount:  15000.0,
		Date:         time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
		Items: []models.AnalyzedItem{
			{Name: "Americano", Quantity: 2, Price: 4500.0},
			{Name: "Sandwich", Quantity: 1, Price: 6000.0},
		},
	}, nil
}
