package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dukan-ledger/backend/internal/application/usecase/dashboard"
	domainerror "github.com/dukan-ledger/backend/internal/domain/error"
	"github.com/dukan-ledger/backend/internal/integration/entrypoint/dto"
)

// DashboardController handles dashboard endpoints.
type DashboardController struct {
	statsUseCase *dashboard.GetDashboardStatsUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(statsUseCase *dashboard.GetDashboardStatsUseCase) *DashboardController {
	return &DashboardController{statsUseCase: statsUseCase}
}

// Get handles GET /dashboard requests.
func (c *DashboardController) Get(ctx *gin.Context) {
	input := dashboard.GetDashboardStatsInput{
		Tab:    dashboard.Tab(ctx.Query("tab")),
		Search: ctx.Query("search"),
		Sort:   dashboard.SortOption(ctx.Query("sort")),
	}

	output, err := c.statsUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDashboardResponse(output))
}

// handleDashboardError maps dashboard errors to HTTP responses.
func (c *DashboardController) handleDashboardError(ctx *gin.Context, err error) {
	var rptErr *domainerror.ReportError
	if errors.As(err, &rptErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: rptErr.Message,
			Code:  string(rptErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
		Code:  string(domainerror.ErrCodeInternal),
	})
}
