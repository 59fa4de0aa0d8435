package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dukan-ledger/backend/internal/domain/entity"
)

// InventoryItemModel represents the inventory_items table in the database.
type InventoryItemModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name      string          `gorm:"type:varchar(255);not null;index"`
	Category  string          `gorm:"type:varchar(255)"`
	Quantity  int             `gorm:"not null"`
	MinLevel  int             `gorm:"not null;default:0"`
	Price     decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Cost      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CreatedAt time.Time       `gorm:"not null"`
	UpdatedAt time.Time       `gorm:"not null"`
}

// TableName returns the table name for the InventoryItemModel.
func (InventoryItemModel) TableName() string {
	return "inventory_items"
}

// ToEntity converts an InventoryItemModel to a domain InventoryItem entity.
func (m *InventoryItemModel) ToEntity() *entity.InventoryItem {
	return &entity.InventoryItem{
		ID:        m.ID,
		Name:      m.Name,
		Category:  m.Category,
		Quantity:  m.Quantity,
		MinLevel:  m.MinLevel,
		Price:     m.Price,
		Cost:      m.Cost,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// InventoryItemFromEntity creates an InventoryItemModel from a domain InventoryItem entity.
func InventoryItemFromEntity(item *entity.InventoryItem) *InventoryItemModel {
	return &InventoryItemModel{
		ID:        item.ID,
		Name:      item.Name,
		Category:  item.Category,
		Quantity:  item.Quantity,
		MinLevel:  item.MinLevel,
		Price:     item.Price,
		Cost:      item.Cost,
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}
}
