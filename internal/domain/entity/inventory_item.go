package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InventoryItem represents a stocked product.
type InventoryItem struct {
	ID       uuid.UUID
	Name     string
	Category string
	// Quantity may go negative under over-sale; the core enforces no floor.
	Quantity int
	MinLevel int // low-stock threshold
	Price    decimal.Decimal
	Cost     decimal.Decimal

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewInventoryItem creates a new InventoryItem entity with a fresh ID.
func NewInventoryItem(name, category string, quantity, minLevel int, price, cost decimal.Decimal) *InventoryItem {
	now := time.Now().UTC()

	return &InventoryItem{
		ID:        uuid.New(),
		Name:      name,
		Category:  category,
		Quantity:  quantity,
		MinLevel:  minLevel,
		Price:     price,
		Cost:      cost,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// LowStock reports whether the item's quantity is at or below its threshold.
func (i *InventoryItem) LowStock() bool {
	return i.Quantity <= i.MinLevel
}

// StockValue returns the monetary value of the item's stock at unit cost.
func (i *InventoryItem) StockValue() decimal.Decimal {
	return i.Cost.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
