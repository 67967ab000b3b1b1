package models

import "time"

type ReceiptStatus string

const (
	StatusPending   ReceiptStatus = "pending"
	StatusProcessed ReceiptStatus = "processed"
	StatusFailed    ReceiptStatus = "failed"
)

// Provenance marks whether a result was read from durable storage or
// synthesized while storage was unavailable.
type Provenance string

const (
	ProvenancePersisted Provenance = "persisted"
	ProvenanceSynthetic Provenance = "synthetic"
)

type Receipt struct {
	ID           string        `db:"receipt_id"`
	MerchantName string        `db:"merchant_name"`
	TotalAmount  float64       `db:"total_amount"`
	ReceiptDate  time.Time     `db:"receipt_date"`
	ImageURL     string        `db:"image_url"`
	Status       ReceiptStatus `db:"status"`
	CreatedAt    time.Time     `db:"created_at"`
}

// LineItem belongs to exactly one receipt. LineIndex preserves insertion
// order; it carries no other meaning.
type LineItem struct {
	ReceiptID string  `db:"receipt_id"`
	LineIndex int     `db:"line_index"`
	ItemName  string  `db:"item_name"`
	Quantity  int     `db:"quantity"`
	Price     float64 `db:"price"`
}
