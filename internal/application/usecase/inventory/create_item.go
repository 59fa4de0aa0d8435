// Package inventory contains inventory-related use cases.
package inventory

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/dukan-ledger/backend/internal/application/adapter"
	"github.com/dukan-ledger/backend/internal/domain/entity"
	domainerror "github.com/dukan-ledger/backend/internal/domain/error"
)

// CreateItemInput represents the input for inventory item creation.
type CreateItemInput struct {
	Name     string
	Category string
	Quantity int
	MinLevel int
	Price    decimal.Decimal
	Cost     decimal.Decimal
}

// CreateItemOutput represents the output of inventory item creation.
type CreateItemOutput struct {
	Item *entity.InventoryItem
}

// CreateItemUseCase handles inventory item creation.
type CreateItemUseCase struct {
	inventoryRepo adapter.InventoryRepository
}

// NewCreateItemUseCase creates a new CreateItemUseCase instance.
func NewCreateItemUseCase(inventoryRepo adapter.InventoryRepository) *CreateItemUseCase {
	return &CreateItemUseCase{inventoryRepo: inventoryRepo}
}

// Execute validates and persists a new stocked item.
func (uc *CreateItemUseCase) Execute(ctx context.Context, input CreateItemInput) (*CreateItemOutput, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, domainerror.NewInventoryError(
			domainerror.ErrCodeEmptyItemName,
			"item name is required",
			domainerror.ErrEmptyItemName,
		)
	}
	if input.Price.IsNegative() || input.Cost.IsNegative() {
		return nil, domainerror.NewInventoryError(
			domainerror.ErrCodeNegativeItemPrice,
			"price and cost must not be negative",
			domainerror.ErrNegativeItemPrice,
		)
	}

	item := entity.NewInventoryItem(input.Name, input.Category, input.Quantity, input.MinLevel, input.Price, input.Cost)
	if err := uc.inventoryRepo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to create inventory item: %w", err)
	}

	return &CreateItemOutput{Item: item}, nil
}
