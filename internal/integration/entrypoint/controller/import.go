package controller

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dukan-ledger/backend/internal/application/usecase/importer"
	domainerror "github.com/dukan-ledger/backend/internal/domain/error"
	"github.com/dukan-ledger/backend/internal/integration/entrypoint/dto"
)

// maxUploadBytes caps how much of an uploaded workbook is read into memory.
const maxUploadBytes = 20 << 20 // 20 MiB

// ImportController handles spreadsheet import endpoints.
type ImportController struct {
	startUseCase  *importer.StartImportUseCase
	statusUseCase *importer.GetImportStatusUseCase
}

// NewImportController creates a new import controller instance.
func NewImportController(
	startUseCase *importer.StartImportUseCase,
	statusUseCase *importer.GetImportStatusUseCase,
) *ImportController {
	return &ImportController{
		startUseCase:  startUseCase,
		statusUseCase: statusUseCase,
	}
}

// Start handles POST /import requests. The workbook arrives as multipart
// form data under the "file" field; the import itself runs in the
// background and the response only acknowledges the job.
func (c *ImportController) Start(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Missing file upload: " + err.Error(),
			Code:  string(domainerror.ErrCodeBadRequest),
		})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Could not open uploaded file",
			Code:  string(domainerror.ErrCodeBadRequest),
		})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Could not read uploaded file",
			Code:  string(domainerror.ErrCodeBadRequest),
		})
		return
	}

	output, err := c.startUseCase.Execute(ctx.Request.Context(), importer.StartImportInput{
		FileName: fileHeader.Filename,
		Data:     data,
	})
	if err != nil {
		c.handleImportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusAccepted, dto.StartImportResponse{
		JobID:   output.JobID,
		Message: output.Message,
	})
}

// Status handles GET /import/status requests.
func (c *ImportController) Status(ctx *gin.Context) {
	output, err := c.statusUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
			Code:  string(domainerror.ErrCodeInternal),
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToImportStatusResponse(output))
}

// handleImportError maps import errors to HTTP responses.
func (c *ImportController) handleImportError(ctx *gin.Context, err error) {
	var impErr *domainerror.ImportError
	if errors.As(err, &impErr) {
		statusCode := http.StatusBadRequest
		if impErr.Code == domainerror.ErrCodeImportAlreadyRunning {
			statusCode = http.StatusConflict
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: impErr.Message,
			Code:  string(impErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
		Code:  string(domainerror.ErrCodeInternal),
	})
}
