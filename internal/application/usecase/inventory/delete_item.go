package inventory

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dukan-ledger/backend/internal/application/adapter"
	domainerror "github.com/dukan-ledger/backend/internal/domain/error"
)

// DeleteItemInput identifies the item to delete.
type DeleteItemInput struct {
	ID uuid.UUID
}

// DeleteItemUseCase handles inventory item deletion. Transactions that
// reference the deleted item keep their link; it simply dangles.
type DeleteItemUseCase struct {
	inventoryRepo adapter.InventoryRepository
}

// NewDeleteItemUseCase creates a new DeleteItemUseCase instance.
func NewDeleteItemUseCase(inventoryRepo adapter.InventoryRepository) *DeleteItemUseCase {
	return &DeleteItemUseCase{inventoryRepo: inventoryRepo}
}

// Execute deletes the item after confirming it exists.
func (uc *DeleteItemUseCase) Execute(ctx context.Context, input DeleteItemInput) error {
	if _, err := uc.inventoryRepo.FindByID(ctx, input.ID); err != nil {
		return domainerror.NewInventoryError(
			domainerror.ErrCodeInventoryItemNotFound,
			"inventory item not found",
			domainerror.ErrInventoryItemNotFound,
		)
	}

	if err := uc.inventoryRepo.Delete(ctx, input.ID); err != nil {
		return fmt.Errorf("failed to delete inventory item: %w", err)
	}
	return nil
}
