package controller

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dukan-ledger/backend/internal/application/usecase/export"
	domainerror "github.com/dukan-ledger/backend/internal/domain/error"
	"github.com/dukan-ledger/backend/internal/integration/entrypoint/dto"
)

// xlsxContentType is the MIME type for xlsx workbooks.
const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportController handles ledger export endpoints.
type ExportController struct {
	exportUseCase *export.ExportTransactionsUseCase
}

// NewExportController creates a new export controller instance.
func NewExportController(exportUseCase *export.ExportTransactionsUseCase) *ExportController {
	return &ExportController{exportUseCase: exportUseCase}
}

// Download handles GET /export requests. The response is the full ledger
// as an xlsx attachment.
func (c *ExportController) Download(ctx *gin.Context) {
	output, err := c.exportUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to export transactions",
			Code:  string(domainerror.ErrCodeInternal),
		})
		return
	}

	filename := fmt.Sprintf("ledger-%s.xlsx", time.Now().Format("2006-01-02"))
	ctx.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	ctx.Data(http.StatusOK, xlsxContentType, output.Data)
}
