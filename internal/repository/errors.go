package repository

import "errors"

var (
	// ErrReceiptNotFound is returned when the receipt id definitively does
	// not exist in storage. Never returned on infrastructure faults.
	ErrReceiptNotFound = errors.New("receipt not found")

	// ErrStorageUnavailable is returned when no connection pool was
	// established at startup.
	ErrStorageUnavailable = errors.New("storage unavailable")
)
