package dto

type ReceiptResponse struct {
	ReceiptID    string  `json:"receipt_id"`
	MerchantName string  `json:"merchant_name"`
	TotalAmount  float64 `json:"total_amount"`
	Date         string  `json:"date"`
	Status       string  `json:"status"`
	Message      string  `json:"message"`
	Provenance   string  `json:"provenance"`
}

type LineItemResponse struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type ReceiptDetailResponse struct {
	ReceiptID    string             `json:"receipt_id"`
	MerchantName string             `json:"merchant_name"`
	TotalAmount  float64            `json:"total_amount"`
	Date         string             `json:"date"`
	Status       string             `json:"status"`
	Items        []LineItemResponse `json:"items"`
	Provenance   string             `json:"provenance"`
}
