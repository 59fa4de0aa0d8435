package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dukan-ledger/backend/internal/application/usecase/inventory"
	domainerror "github.com/dukan-ledger/backend/internal/domain/error"
	"github.com/dukan-ledger/backend/internal/integration/entrypoint/dto"
)

// InventoryController handles inventory endpoints.
type InventoryController struct {
	listUseCase   *inventory.ListItemsUseCase
	createUseCase *inventory.CreateItemUseCase
	updateUseCase *inventory.UpdateItemUseCase
	deleteUseCase *inventory.DeleteItemUseCase
}

// NewInventoryController creates a new inventory controller instance.
func NewInventoryController(
	listUseCase *inventory.ListItemsUseCase,
	createUseCase *inventory.CreateItemUseCase,
	updateUseCase *inventory.UpdateItemUseCase,
	deleteUseCase *inventory.DeleteItemUseCase,
) *InventoryController {
	return &InventoryController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /inventory requests.
func (c *InventoryController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleInventoryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInventoryListResponse(output))
}

// Create handles POST /inventory requests.
func (c *InventoryController) Create(ctx *gin.Context) {
	var req dto.CreateInventoryItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeBadRequest),
		})
		return
	}

	input := inventory.CreateItemInput{
		Name:     req.Name,
		Category: req.Category,
		Quantity: req.Quantity,
		MinLevel: req.MinLevel,
		Price:    decimal.NewFromFloat(req.Price),
		Cost:     decimal.NewFromFloat(req.Cost),
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleInventoryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToInventoryItemResponse(output.Item))
}

// Update handles PATCH /inventory/:id requests.
func (c *InventoryController) Update(ctx *gin.Context) {
	itemID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid item ID format",
			Code:  string(domainerror.ErrCodeBadRequest),
		})
		return
	}

	var req dto.UpdateInventoryItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeBadRequest),
		})
		return
	}

	input := inventory.UpdateItemInput{
		ID:       itemID,
		Name:     req.Name,
		Category: req.Category,
		Quantity: req.Quantity,
		MinLevel: req.MinLevel,
	}
	if req.Price != nil {
		price := decimal.NewFromFloat(*req.Price)
		input.Price = &price
	}
	if req.Cost != nil {
		cost := decimal.NewFromFloat(*req.Cost)
		input.Cost = &cost
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleInventoryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInventoryItemResponse(output.Item))
}

// Delete handles DELETE /inventory/:id requests.
func (c *InventoryController) Delete(ctx *gin.Context) {
	itemID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid item ID format",
			Code:  string(domainerror.ErrCodeBadRequest),
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), inventory.DeleteItemInput{ID: itemID}); err != nil {
		c.handleInventoryError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleInventoryError maps inventory errors to HTTP responses.
func (c *InventoryController) handleInventoryError(ctx *gin.Context, err error) {
	var invErr *domainerror.InventoryError
	if errors.As(err, &invErr) {
		statusCode := http.StatusBadRequest
		if invErr.Code == domainerror.ErrCodeInventoryItemNotFound {
			statusCode = http.StatusNotFound
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: invErr.Message,
			Code:  string(invErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
		Code:  string(domainerror.ErrCodeInternal),
	})
}
