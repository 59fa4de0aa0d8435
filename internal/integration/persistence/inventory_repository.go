package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dukan-ledger/backend/internal/application/adapter"
	"github.com/dukan-ledger/backend/internal/domain/entity"
	domainerror "github.com/dukan-ledger/backend/internal/domain/error"
	"github.com/dukan-ledger/backend/internal/integration/persistence/model"
)

// inventoryRepository implements the adapter.InventoryRepository interface.
type inventoryRepository struct {
	db *gorm.DB
}

// NewInventoryRepository creates a new inventory repository instance.
func NewInventoryRepository(db *gorm.DB) adapter.InventoryRepository {
	return &inventoryRepository{
		db: db,
	}
}

// Create creates a new inventory item in the database.
func (r *inventoryRepository) Create(ctx context.Context, item *entity.InventoryItem) error {
	itemModel := model.InventoryItemFromEntity(item)
	result := r.db.WithContext(ctx).Create(itemModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves an inventory item by its ID.
func (r *inventoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.InventoryItem, error) {
	var itemModel model.InventoryItemModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&itemModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrInventoryItemNotFound
		}
		return nil, result.Error
	}
	return itemModel.ToEntity(), nil
}

// FindAll retrieves every inventory item, alphabetically by name.
func (r *inventoryRepository) FindAll(ctx context.Context) ([]*entity.InventoryItem, error) {
	var itemModels []model.InventoryItemModel
	result := r.db.WithContext(ctx).Order("name ASC").Find(&itemModels)
	if result.Error != nil {
		return nil, result.Error
	}

	items := make([]*entity.InventoryItem, len(itemModels))
	for i, im := range itemModels {
		items[i] = im.ToEntity()
	}
	return items, nil
}

// Update updates an existing inventory item.
func (r *inventoryRepository) Update(ctx context.Context, item *entity.InventoryItem) error {
	itemModel := model.InventoryItemFromEntity(item)
	result := r.db.WithContext(ctx).Save(itemModel)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrInventoryItemNotFound
	}
	return nil
}

// Delete removes an inventory item by its ID.
func (r *inventoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.InventoryItemModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrInventoryItemNotFound
	}
	return nil
}
