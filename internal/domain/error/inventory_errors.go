package error

import "errors"

// Inventory domain errors.
var (
	// ErrInventoryItemNotFound is returned when an inventory item is not found.
	ErrInventoryItemNotFound = errors.New("inventory item not found")

	// ErrEmptyItemName is returned when an inventory item name is missing.
	ErrEmptyItemName = errors.New("item name cannot be empty")

	// ErrNegativeItemPrice is returned when an item price or cost is negative.
	ErrNegativeItemPrice = errors.New("item price and cost cannot be negative")
)

// InventoryErrorCode defines error codes for inventory errors.
// Format: INV-XXYYYY where XX is category and YYYY is specific error.
type InventoryErrorCode string

const (
	ErrCodeInventoryItemNotFound InventoryErrorCode = "INV-010001"
	ErrCodeEmptyItemName         InventoryErrorCode = "INV-010002"
	ErrCodeNegativeItemPrice     InventoryErrorCode = "INV-010003"
)

// InventoryError represents an inventory error with code and message.
type InventoryError struct {
	Code    InventoryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *InventoryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *InventoryError) Unwrap() error {
	return e.Err
}

// NewInventoryError creates a new InventoryError.
func NewInventoryError(code InventoryErrorCode, message string, err error) *InventoryError {
	return &InventoryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
