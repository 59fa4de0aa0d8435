package dto

import (
	"time"

	"github.com/dukan-ledger/backend/internal/application/usecase/inventory"
	"github.com/dukan-ledger/backend/internal/domain/entity"
)

// CreateInventoryItemRequest represents the request body for item creation.
type CreateInventoryItemRequest struct {
	Name     string  `json:"name" binding:"required,min=1,max=255"`
	Category string  `json:"category,omitempty" binding:"omitempty,max=255"`
	Quantity int     `json:"quantity"`
	MinLevel int     `json:"min_level,omitempty"`
	Price    float64 `json:"price"`
	Cost     float64 `json:"cost"`
}

// UpdateInventoryItemRequest represents the request body for item update.
type UpdateInventoryItemRequest struct {
	Name     *string  `json:"name,omitempty" binding:"omitempty,min=1,max=255"`
	Category *string  `json:"category,omitempty" binding:"omitempty,max=255"`
	Quantity *int     `json:"quantity,omitempty"`
	MinLevel *int     `json:"min_level,omitempty"`
	Price    *float64 `json:"price,omitempty"`
	Cost     *float64 `json:"cost,omitempty"`
}

// InventoryItemResponse represents a single inventory item in API responses.
type InventoryItemResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Quantity  int       `json:"quantity"`
	MinLevel  int       `json:"min_level"`
	Price     string    `json:"price"`
	Cost      string    `json:"cost"`
	LowStock  bool      `json:"low_stock"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// InventoryListResponse represents the response for listing inventory items.
type InventoryListResponse struct {
	Items         []InventoryItemResponse `json:"items"`
	TotalValue    string                  `json:"total_value"`
	LowStockCount int                     `json:"low_stock_count"`
}

// ToInventoryItemResponse converts an InventoryItem entity to an InventoryItemResponse DTO.
func ToInventoryItemResponse(item *entity.InventoryItem) InventoryItemResponse {
	return InventoryItemResponse{
		ID:        item.ID.String(),
		Name:      item.Name,
		Category:  item.Category,
		Quantity:  item.Quantity,
		MinLevel:  item.MinLevel,
		Price:     item.Price.String(),
		Cost:      item.Cost.String(),
		LowStock:  item.LowStock(),
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}
}

// ToInventoryListResponse converts a ListItemsOutput to an InventoryListResponse DTO.
func ToInventoryListResponse(output *inventory.ListItemsOutput) InventoryListResponse {
	responses := make([]InventoryItemResponse, len(output.Items))
	for i, item := range output.Items {
		responses[i] = ToInventoryItemResponse(item)
	}
	return InventoryListResponse{
		Items:         responses,
		TotalValue:    output.TotalValue.String(),
		LowStockCount: output.LowStockCount,
	}
}
