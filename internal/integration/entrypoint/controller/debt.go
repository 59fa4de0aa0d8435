package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dukan-ledger/backend/internal/application/usecase/debt"
	domainerror "github.com/dukan-ledger/backend/internal/domain/error"
	"github.com/dukan-ledger/backend/internal/integration/entrypoint/dto"
)

// DebtController handles debtor endpoints.
type DebtController struct {
	listUseCase   *debt.ListDebtorsUseCase
	settleUseCase *debt.SettleDebtsUseCase
}

// NewDebtController creates a new debt controller instance.
func NewDebtController(
	listUseCase *debt.ListDebtorsUseCase,
	settleUseCase *debt.SettleDebtsUseCase,
) *DebtController {
	return &DebtController{
		listUseCase:   listUseCase,
		settleUseCase: settleUseCase,
	}
}

// List handles GET /debtors requests.
func (c *DebtController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleDebtError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDebtorListResponse(output.Debtors))
}

// Settle handles POST /debtors/:client/settle requests.
func (c *DebtController) Settle(ctx *gin.Context) {
	client := ctx.Param("client")

	output, err := c.settleUseCase.Execute(ctx.Request.Context(), debt.SettleDebtsInput{Client: client})
	if err != nil {
		c.handleDebtError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SettleDebtsResponse{
		Client:  client,
		Settled: output.Settled,
	})
}

// handleDebtError maps debt errors to HTTP responses.
func (c *DebtController) handleDebtError(ctx *gin.Context, err error) {
	var debtErr *domainerror.DebtError
	if errors.As(err, &debtErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: debtErr.Message,
			Code:  string(debtErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
		Code:  string(domainerror.ErrCodeInternal),
	})
}
