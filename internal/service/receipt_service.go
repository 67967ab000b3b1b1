package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"spendit-receipts/internal/dto"
	"spendit-receipts/internal/models"
	"spendit-receipts/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrInvalidUpload is returned when the uploaded file is not an image.
var ErrInvalidUpload = errors.New("only image uploads are supported")

// Upload describes an incoming receipt file.
type Upload struct {
	FileName    string `validate:"required"`
	ContentType string `validate:"required,startswith=image/"`
	Size        int64  `validate:"gte=0"`
}

// ReceiptStore is the storage gateway as seen by the processor.
type ReceiptStore interface {
	Available() bool
	Save(ctx context.Context, receipt *models.Receipt, items []models.LineItem) error
	Get(ctx context.Context, id string) (*models.Receipt, []models.LineItem, error)
	Ping(ctx context.Context) error
}

// Analyzer extracts merchant, total, date and line items from an upload.
// The real extraction engine lives outside this service; the default
// implementation returns a fixed result.
type Analyzer interface {
	Analyze(ctx context.Context, upload Upload) (*models.Analysis, error)
}

// IDGenerator generates unique receipt identifiers
type IDGenerator interface {
	Generate(now time.Time) string
}

// TimeSource provides the current time
type TimeSource interface {
	Now() time.Time
}

// receiptIDGenerator keeps the RCP-<timestamp> shape and appends a random
// suffix so that identifiers stay distinct for concurrent intakes within
// the same second.
type receiptIDGenerator struct{}

func (receiptIDGenerator) Generate(now time.Time) string {
	suffix := uuid.New().String()[:8]
	return fmt.Sprintf("RCP-%s-%s", now.Format("20060102-150405"), suffix)
}

type defaultTimeSource struct{}

func (defaultTimeSource) Now() time.Time {
	return time.Now()
}

// ReceiptService orchestrates the ingestion workflow: validate the upload,
// derive an identifier, run analysis and persist the result. Storage
// faults never fail an intake; the response is synthesized and labeled
// instead.
type ReceiptService struct {
	store      ReceiptStore
	analyzer   Analyzer
	validate   *validator.Validate
	idGen      IDGenerator
	timeSource TimeSource
	logger     *zap.Logger
}

func NewReceiptService(store ReceiptStore, analyzer Analyzer, logger *zap.Logger) *ReceiptService {
	return &ReceiptService{
		store:      store,
		analyzer:   analyzer,
		validate:   validator.New(),
		idGen:      receiptIDGenerator{},
		timeSource: defaultTimeSource{},
		logger:     logger,
	}
}

// NewReceiptServiceWithDeps creates a ReceiptService with custom id
// generation and time source for testing.
func NewReceiptServiceWithDeps(store ReceiptStore, analyzer Analyzer, idGen IDGenerator, timeSource TimeSource, logger *zap.Logger) *ReceiptService {
	return &ReceiptService{
		store:      store,
		analyzer:   analyzer,
		validate:   validator.New(),
		idGen:      idGen,
		timeSource: timeSource,
		logger:     logger,
	}
}

// Intake analyzes an uploaded receipt image and persists the result. The
// returned response always carries a provenance tag: "persisted" when the
// transaction committed, "synthetic" when storage was unavailable or the
// write failed.
func (s *ReceiptService) Intake(ctx context.Context, upload Upload) (*dto.ReceiptResponse, error) {
	if err := s.validate.Struct(upload); err != nil {
		return nil, fmt.Errorf("%w: content type %q", ErrInvalidUpload, upload.ContentType)
	}

	now := s.timeSource.Now()
	receiptID := s.idGen.Generate(now)

	analysis, err := s.analyzer.Analyze(ctx, upload)
	if err != nil {
		s.logger.Error("Receipt analysis failed",
			zap.String("receipt_id", receiptID),
			zap.String("file_name", upload.FileName),
			zap.Error(err),
		)
		return nil, fmt.Errorf("failed to analyze receipt: %w", err)
	}

	receipt := &models.Receipt{
		ID:           receiptID,
		MerchantName: analysis.MerchantName,
		TotalAmount:  analysis.TotalAmount,
		ReceiptDate:  analysis.Date,
		ImageURL:     fmt.Sprintf("s3://receipts/%s.jpg", receiptID),
		Status:       models.StatusProcessed,
		CreatedAt:    now,
	}

	items := make([]models.LineItem, len(analysis.Items))
	for i, item := range analysis.Items {
		items[i] = models.LineItem{
			ReceiptID: receiptID,
			LineIndex: i,
			ItemName:  item.Name,
			Quantity:  item.Quantity,
			Price:     item.Price,
		}
	}

	if !s.store.Available() {
		return s.synthesizeIntake(receipt, "receipt analyzed but not stored (storage not configured)"), nil
	}

	if err := s.store.Save(ctx, receipt, items); err != nil {
		s.logger.Error("Failed to save receipt",
			zap.String("receipt_id", receiptID),
			zap.Error(err),
		)
		return s.synthesizeIntake(receipt, "receipt analyzed but not stored (storage error)"), nil
	}

	return &dto.ReceiptResponse{
		ReceiptID:    receipt.ID,
		MerchantName: receipt.MerchantName,
		TotalAmount:  receipt.TotalAmount,
		Date:         receipt.ReceiptDate.Format("2006-01-02"),
		Status:       string(receipt.Status),
		Message:      "receipt analyzed and stored",
		Provenance:   string(models.ProvenancePersisted),
	}, nil
}

// Retrieve reads a receipt with its items. A missing receipt is reported
// as repository.ErrReceiptNotFound only when storage is definitively
// available; infrastructure faults degrade to a synthetic placeholder.
func (s *ReceiptService) Retrieve(ctx context.Context, id string) (*dto.ReceiptDetailResponse, error) {
	if !s.store.Available() {
		return s.synthesizeReceipt(id), nil
	}

	receipt, items, err := s.store.Get(ctx, id)
	if errors.Is(err, repository.ErrReceiptNotFound) {
		return nil, err
	}
	if err != nil {
		s.logger.Warn("Receipt lookup failed, serving synthetic result",
			zap.String("receipt_id", id),
			zap.Error(err),
		)
		return s.synthesizeReceipt(id), nil
	}

	itemResponses := make([]dto.LineItemResponse, len(items))
	for i, item := range items {
		itemResponses[i] = dto.LineItemResponse{
			Name:     item.ItemName,
			Quantity: item.Quantity,
			Price:    item.Price,
		}
	}

	return &dto.ReceiptDetailResponse{
		ReceiptID:    receipt.ID,
		MerchantName: receipt.MerchantName,
		TotalAmount:  receipt.TotalAmount,
		Date:         receipt.ReceiptDate.Format("2006-01-02"),
		Status:       string(receipt.Status),
		Items:        itemResponses,
		Provenance:   string(models.ProvenancePersisted),
	}, nil
}
