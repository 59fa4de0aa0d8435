package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/dukan-ledger/backend/internal/domain/entity"
)

// InventoryRepository defines the interface for inventory persistence operations.
type InventoryRepository interface {
	// Create creates a new inventory item in the store.
	Create(ctx context.Context, item *entity.InventoryItem) error

	// FindByID retrieves an inventory item by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.InventoryItem, error)

	// FindAll retrieves a snapshot of all inventory items ordered by name.
	FindAll(ctx context.Context) ([]*entity.InventoryItem, error)

	// Update replaces a stored inventory item with the given record.
	Update(ctx context.Context, item *entity.InventoryItem) error

	// Delete removes an inventory item by ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
