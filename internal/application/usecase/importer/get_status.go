package importer

import "context"

// GetImportStatusOutput represents the polled state of the import job.
type GetImportStatusOutput struct {
	IsProcessing bool             `json:"is_processing"`
	JobID        string           `json:"job_id,omitempty"`
	LastResult   *ImportResult    `json:"last_result,omitempty"`
	Error        *ProcessingError `json:"error,omitempty"`
}

// GetImportStatusUseCase reports the current import job state.
type GetImportStatusUseCase struct {
	tracker ImportTracker
}

// NewGetImportStatusUseCase creates a new GetImportStatusUseCase instance.
func NewGetImportStatusUseCase(tracker ImportTracker) *GetImportStatusUseCase {
	return &GetImportStatusUseCase{tracker: tracker}
}

// Execute returns the processing flag, last result, and any unexpired error.
func (uc *GetImportStatusUseCase) Execute(_ context.Context) (*GetImportStatusOutput, error) {
	return &GetImportStatusOutput{
		IsProcessing: uc.tracker.IsProcessing(),
		JobID:        uc.tracker.GetJobID(),
		LastResult:   uc.tracker.GetResult(),
		Error:        uc.tracker.GetError(),
	}, nil
}
