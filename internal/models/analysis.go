package models

import "time"

// Analysis is the output of the receipt analysis collaborator.
type Analysis struct {
	MerchantName string
	TotalAmount  float64
	Date         time.Time
	Items        []AnalyzedItem
}

type AnalyzedItem struct {
	Name     string
	Quantity int
	Price    float64
}
