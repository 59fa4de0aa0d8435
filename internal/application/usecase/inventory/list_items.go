package inventory

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/dukan-ledger/backend/internal/application/adapter"
	"github.com/dukan-ledger/backend/internal/domain/entity"
)

// ListItemsOutput holds the item snapshot plus the stock summary the
// inventory screen shows alongside it.
type ListItemsOutput struct {
	Items         []*entity.InventoryItem
	TotalValue    decimal.Decimal // stock valued at unit cost
	LowStockCount int
}

// ListItemsUseCase handles inventory listing.
type ListItemsUseCase struct {
	inventoryRepo adapter.InventoryRepository
}

// NewListItemsUseCase creates a new ListItemsUseCase instance.
func NewListItemsUseCase(inventoryRepo adapter.InventoryRepository) *ListItemsUseCase {
	return &ListItemsUseCase{inventoryRepo: inventoryRepo}
}

// Execute returns every item with the aggregate stock figures.
func (uc *ListItemsUseCase) Execute(ctx context.Context) (*ListItemsOutput, error) {
	items, err := uc.inventoryRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load inventory: %w", err)
	}

	out := &ListItemsOutput{Items: items, TotalValue: decimal.Zero}
	for _, item := range items {
		out.TotalValue = out.TotalValue.Add(item.StockValue())
		if item.LowStock() {
			out.LowStockCount++
		}
	}
	return out, nil
}
