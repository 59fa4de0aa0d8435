package error

import "errors"

// Spreadsheet import domain errors.
var (
	// ErrImportAlreadyRunning is returned when an import is started while another is in flight.
	ErrImportAlreadyRunning = errors.New("an import is already in progress")

	// ErrImportEmptyFile is returned when the uploaded file contains no bytes.
	ErrImportEmptyFile = errors.New("uploaded file is empty")

	// ErrImportDecodeFailed is returned when the spreadsheet decoder cannot parse the file.
	ErrImportDecodeFailed = errors.New("could not read spreadsheet file")

	// ErrImportStoreFailed is returned when the classified batch cannot be written to the store.
	ErrImportStoreFailed = errors.New("failed to save imported transactions")
)

// ImportErrorCode defines error codes for import errors.
// Format: IMP-XXYYYY where XX is category and YYYY is specific error.
type ImportErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeImportAlreadyRunning ImportErrorCode = "IMP-010001"
	ErrCodeImportEmptyFile      ImportErrorCode = "IMP-010002"

	// Processing errors (02XXXX)
	ErrCodeImportDecodeFailed ImportErrorCode = "IMP-020001"
	ErrCodeImportStoreFailed  ImportErrorCode = "IMP-020002"
)

// ImportError represents an import error with code and message.
type ImportError struct {
	Code    ImportErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ImportError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ImportError) Unwrap() error {
	return e.Err
}

// NewImportError creates a new ImportError.
func NewImportError(code ImportErrorCode, message string, err error) *ImportError {
	return &ImportError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
