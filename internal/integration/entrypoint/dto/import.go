package dto

import (
	"time"

	"github.com/dukan-ledger/backend/internal/application/usecase/importer"
)

// StartImportResponse represents the response for an accepted import.
type StartImportResponse struct {
	JobID   string `json:"job_id"`
	Message string `json:"message"`
}

// ImportResultResponse represents the outcome of a finished import run.
type ImportResultResponse struct {
	JobID      string    `json:"job_id"`
	Imported   int       `json:"imported"`
	FinishedAt time.Time `json:"finished_at"`
}

// ImportErrorResponse represents an unexpired import failure.
type ImportErrorResponse struct {
	Code      string    `json:"code"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// ImportStatusResponse represents the polled import job state.
type ImportStatusResponse struct {
	IsProcessing bool                  `json:"is_processing"`
	JobID        string                `json:"job_id,omitempty"`
	LastResult   *ImportResultResponse `json:"last_result,omitempty"`
	Error        *ImportErrorResponse  `json:"error,omitempty"`
}

// ToImportStatusResponse converts a GetImportStatusOutput to an ImportStatusResponse DTO.
func ToImportStatusResponse(output *importer.GetImportStatusOutput) ImportStatusResponse {
	response := ImportStatusResponse{
		IsProcessing: output.IsProcessing,
		JobID:        output.JobID,
	}
	if output.LastResult != nil {
		response.LastResult = &ImportResultResponse{
			JobID:      output.LastResult.JobID,
			Imported:   output.LastResult.Imported,
			FinishedAt: output.LastResult.FinishedAt,
		}
	}
	if output.Error != nil {
		response.Error = &ImportErrorResponse{
			Code:      output.Error.Code,
			Message:   output.Error.Message,
			Timestamp: output.Error.Timestamp,
		}
	}
	return response
}
