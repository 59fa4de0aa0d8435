package importer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dukan-ledger/backend/internal/application/adapter"
	domainerror "github.com/dukan-ledger/backend/internal/domain/error"
)

// StartImportInput represents the input for starting a spreadsheet import.
type StartImportInput struct {
	FileName string
	Data     []byte
}

// StartImportOutput represents the output of starting a spreadsheet import.
type StartImportOutput struct {
	JobID   string `json:"job_id"`
	Message string `json:"message"`
}

// StartImportUseCase runs the decode + classify pipeline off the request
// path. The caller receives a job ID immediately and polls for the single
// resolve/reject outcome; there is no partial observability and a run
// cannot be cancelled once started.
type StartImportUseCase struct {
	decoder         adapter.SpreadsheetDecoder
	transactionRepo adapter.TransactionRepository
	inventoryRepo   adapter.InventoryRepository
	tracker         ImportTracker
}

// NewStartImportUseCase creates a new StartImportUseCase instance.
func NewStartImportUseCase(
	decoder adapter.SpreadsheetDecoder,
	transactionRepo adapter.TransactionRepository,
	inventoryRepo adapter.InventoryRepository,
	tracker ImportTracker,
) *StartImportUseCase {
	return &StartImportUseCase{
		decoder:         decoder,
		transactionRepo: transactionRepo,
		inventoryRepo:   inventoryRepo,
		tracker:         tracker,
	}
}

// Execute validates the upload and launches the background import job.
func (uc *StartImportUseCase) Execute(ctx context.Context, input StartImportInput) (*StartImportOutput, error) {
	if len(input.Data) == 0 {
		return nil, domainerror.NewImportError(
			domainerror.ErrCodeImportEmptyFile,
			"uploaded file is empty",
			domainerror.ErrImportEmptyFile,
		)
	}

	// The UI disables re-entrant uploads; reject them here as well so two
	// runs never race on the tracker.
	if uc.tracker.IsProcessing() {
		return nil, domainerror.NewImportError(
			domainerror.ErrCodeImportAlreadyRunning,
			"an import is already in progress",
			domainerror.ErrImportAlreadyRunning,
		)
	}

	uc.tracker.ClearError()

	jobID := uuid.New().String()
	uc.tracker.SetProcessing(jobID)

	// Detached context: the job runs to completion even if the upload
	// request ends. A late-arriving result is simply ignored by the UI.
	go uc.runImport(context.Background(), jobID, input)

	return &StartImportOutput{
		JobID:   jobID,
		Message: fmt.Sprintf("import started for %s", input.FileName),
	}, nil
}

// runImport is the worker body: decode, classify, link, append.
// It resolves into exactly one tracker result or one tracker error.
func (uc *StartImportUseCase) runImport(ctx context.Context, jobID string, input StartImportInput) {
	startTime := time.Now()
	logger := slog.Default().With("jobID", jobID, "file", input.FileName)

	defer func() {
		uc.tracker.ClearProcessing()
		logger.Info("Import job finished", "duration", time.Since(startTime).String())
	}()

	logger.Info("Import job started", "bytes", len(input.Data))

	grid, err := uc.decoder.Decode(input.Data)
	if err != nil {
		// Malformed file: the whole import aborts, nothing is committed.
		logger.Error("Spreadsheet decode failed", "error", err)
		uc.tracker.SetError(&ProcessingError{
			Code:      string(domainerror.ErrCodeImportDecodeFailed),
			Message:   domainerror.ErrImportDecodeFailed.Error(),
			Timestamp: time.Now(),
		})
		return
	}

	items, err := uc.inventoryRepo.FindAll(ctx)
	if err != nil {
		// Linking is best-effort; classify without inventory references.
		logger.Warn("Could not load inventory for linking", "error", err)
		items = nil
	}

	today := time.Now().Format("2006-01-02")
	batch := BuildBatch(grid, items, today)

	if len(batch) > 0 {
		if err := uc.transactionRepo.BulkCreate(ctx, batch); err != nil {
			logger.Error("Failed to store imported batch", "error", err, "rows", len(batch))
			uc.tracker.SetError(&ProcessingError{
				Code:      string(domainerror.ErrCodeImportStoreFailed),
				Message:   domainerror.ErrImportStoreFailed.Error(),
				Timestamp: time.Now(),
			})
			return
		}
	}

	// Zero usable rows is a successful empty batch, not an error.
	uc.tracker.SetResult(&ImportResult{
		JobID:      jobID,
		Imported:   len(batch),
		FinishedAt: time.Now(),
	})
	logger.Info("Import batch committed", "rows", len(batch))
}
