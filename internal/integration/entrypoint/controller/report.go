package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dukan-ledger/backend/internal/application/usecase/report"
	domainerror "github.com/dukan-ledger/backend/internal/domain/error"
	"github.com/dukan-ledger/backend/internal/integration/entrypoint/dto"
)

// ReportController handles report endpoints.
type ReportController struct {
	statsUseCase *report.GetReportStatsUseCase
}

// NewReportController creates a new report controller instance.
func NewReportController(statsUseCase *report.GetReportStatsUseCase) *ReportController {
	return &ReportController{statsUseCase: statsUseCase}
}

// Get handles GET /report requests.
func (c *ReportController) Get(ctx *gin.Context) {
	input := report.GetReportStatsInput{
		StartDate: ctx.Query("start_date"),
		EndDate:   ctx.Query("end_date"),
		Search:    ctx.Query("search"),
	}

	output, err := c.statsUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToReportResponse(output.Stats))
}

// handleReportError maps report errors to HTTP responses.
func (c *ReportController) handleReportError(ctx *gin.Context, err error) {
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
