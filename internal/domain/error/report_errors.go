package error

import "errors"

// Report domain errors.
var (
	// ErrMissingStartDate is returned when the report start date is missing.
	ErrMissingStartDate = errors.New("start date is required")

	// ErrMissingEndDate is returned when the report end date is missing.
	ErrMissingEndDate = errors.New("end date is required")

	// ErrInvalidDateRange is returned when the end date precedes the start date.
	ErrInvalidDateRange = errors.New("end date must not be before start date")

	// ErrInvalidReportDate is returned when a report bound is not a YYYY-MM-DD day.
	ErrInvalidReportDate = errors.New("report dates must be YYYY-MM-DD")

	// ErrInvalidSortOption is returned when the sort option is unknown.
	ErrInvalidSortOption = errors.New("invalid sort option")
)

// ReportErrorCode defines error codes for report and dashboard errors.
// Format: RPT-XXYYYY where XX is category and YYYY is specific error.
type ReportErrorCode string

const (
	ErrCodeMissingStartDate  ReportErrorCode = "RPT-010001"
	ErrCodeMissingEndDate    ReportErrorCode = "RPT-010002"
	ErrCodeInvalidDateRange  ReportErrorCode = "RPT-010003"
	ErrCodeInvalidReportDate ReportErrorCode = "RPT-010004"
	ErrCodeInvalidSortOption ReportErrorCode = "RPT-010005"
)

// ReportError represents a report error with code and message.
type ReportError struct {
	Code    ReportErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ReportError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ReportError) Unwrap() error {
	return e.Err
}

// NewReportError creates a new ReportError.
func NewReportError(code ReportErrorCode, message string, err error) *ReportError {
	return &ReportError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
