package inventory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dukan-ledger/backend/internal/application/adapter"
	"github.com/dukan-ledger/backend/internal/domain/entity"
	domainerror "github.com/dukan-ledger/backend/internal/domain/error"
)

// UpdateItemInput represents a partial item update; nil fields are
// left untouched. Quantity sets an absolute stock count.
type UpdateItemInput struct {
	ID       uuid.UUID
	Name     *string
	Category *string
	Quantity *int
	MinLevel *int
	Price    *decimal.Decimal
	Cost     *decimal.Decimal
}

// UpdateItemOutput represents the output of an inventory item update.
type UpdateItemOutput struct {
	Item *entity.InventoryItem
}

// UpdateItemUseCase handles partial inventory item updates.
type UpdateItemUseCase struct {
	inventoryRepo adapter.InventoryRepository
}

// NewUpdateItemUseCase creates a new UpdateItemUseCase instance.
func NewUpdateItemUseCase(inventoryRepo adapter.InventoryRepository) *UpdateItemUseCase {
	return &UpdateItemUseCase{inventoryRepo: inventoryRepo}
}

// Execute applies the provided fields and persists the result.
func (uc *UpdateItemUseCase) Execute(ctx context.Context, input UpdateItemInput) (*UpdateItemOutput, error) {
	item, err := uc.inventoryRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, domainerror.NewInventoryError(
			domainerror.ErrCodeInventoryItemNotFound,
			"inventory item not found",
			domainerror.ErrInventoryItemNotFound,
		)
	}

	if input.Name != nil {
		if strings.TrimSpace(*input.Name) == "" {
			return nil, domainerror.NewInventoryError(
				domainerror.ErrCodeEmptyItemName,
				"item name is required",
				domainerror.ErrEmptyItemName,
			)
		}
		item.Name = *input.Name
	}
	if input.Category != nil {
		item.Category = *input.Category
	}
	if input.Quantity != nil {
		item.Quantity = *input.Quantity
	}
	if input.MinLevel != nil {
		item.MinLevel = *input.MinLevel
	}
	if input.Price != nil {
		if input.Price.IsNegative() {
			return nil, domainerror.NewInventoryError(
				domainerror.ErrCodeNegativeItemPrice,
				"price must not be negative",
				domainerror.ErrNegativeItemPrice,
			)
		}
		item.Price = *input.Price
	}
	if input.Cost != nil {
		if input.Cost.IsNegative() {
			return nil, domainerror.NewInventoryError(
				domainerror.ErrCodeNegativeItemPrice,
				"cost must not be negative",
				domainerror.ErrNegativeItemPrice,
			)
		}
		item.Cost = *input.Cost
	}

	item.UpdatedAt = time.Now().UTC()
	if err := uc.inventoryRepo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to update inventory item: %w", err)
	}

	return &UpdateItemOutput{Item: item}, nil
}
