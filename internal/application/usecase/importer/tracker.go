package importer

import (
	"sync"
	"time"
)

// ErrorDisplayTTL is how long an import error stays visible before it
// auto-clears. Errors are transient and never terminate the process.
const ErrorDisplayTTL = 30 * time.Second

// ImportResult is the single success outcome of an import run.
type ImportResult struct {
	JobID      string    `json:"job_id"`
	Imported   int       `json:"imported"`
	FinishedAt time.Time `json:"finished_at"`
}

// ProcessingError is the single failure outcome of an import run.
type ProcessingError struct {
	Code      string    `json:"code"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// ImportTracker tracks the state of the background import job: whether a
// run is in flight, its last result, and its last (auto-clearing) error.
type ImportTracker interface {
	IsProcessing() bool
	GetJobID() string
	SetProcessing(jobID string)
	ClearProcessing()

	SetResult(result *ImportResult)
	GetResult() *ImportResult

	SetError(err *ProcessingError)
	GetError() *ProcessingError
	ClearError()
}

// InMemoryImportTracker is the mutex-guarded in-memory ImportTracker.
// Only one import is expected in flight at a time, so state is global
// rather than keyed per user.
type InMemoryImportTracker struct {
	mu         sync.Mutex
	processing bool
	jobID      string
	result     *ImportResult
	lastErr    *ProcessingError
	errorTTL   time.Duration
}

// NewInMemoryImportTracker creates a tracker with the default error TTL.
func NewInMemoryImportTracker() *InMemoryImportTracker {
	return &InMemoryImportTracker{errorTTL: ErrorDisplayTTL}
}

// NewInMemoryImportTrackerWithTTL creates a tracker with a custom error TTL.
func NewInMemoryImportTrackerWithTTL(ttl time.Duration) *InMemoryImportTracker {
	return &InMemoryImportTracker{errorTTL: ttl}
}

// IsProcessing reports whether an import run is in flight.
func (t *InMemoryImportTracker) IsProcessing() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.processing
}

// GetJobID returns the job ID of the current or most recent run.
func (t *InMemoryImportTracker) GetJobID() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.jobID
}

// SetProcessing marks a run as in flight.
func (t *InMemoryImportTracker) SetProcessing(jobID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.processing = true
	t.jobID = jobID
}

// ClearProcessing marks the run as finished.
func (t *InMemoryImportTracker) ClearProcessing() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.processing = false
}

// SetResult records the outcome of a successful run.
func (t *InMemoryImportTracker) SetResult(result *ImportResult) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.result = result
}

// GetResult returns the most recent successful outcome, if any.
func (t *InMemoryImportTracker) GetResult() *ImportResult {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.result
}

// SetError records a failure outcome.
func (t *InMemoryImportTracker) SetError(err *ProcessingError) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.lastErr = err
}

// GetError returns the last error, or nil once it has expired.
func (t *InMemoryImportTracker) GetError() *ProcessingError {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.lastErr == nil {
		return nil
	}
	if time.Since(t.lastErr.Timestamp) > t.errorTTL {
		t.lastErr = nil
		return nil
	}
	return t.lastErr
}

// ClearError discards any recorded error.
func (t *InMemoryImportTracker) ClearError() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.lastErr = nil
}
