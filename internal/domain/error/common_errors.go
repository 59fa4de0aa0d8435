package error

// Cross-cutting error codes surfaced directly by middleware and controllers.
const (
	// ErrCodeRateLimited is returned when a client exceeds the upload rate limit.
	ErrCodeRateLimited = "APP-010001"

	// ErrCodeInternal is returned for unexpected processing failures.
	ErrCodeInternal = "APP-020001"

	// ErrCodeBadRequest is returned when a request body or parameter fails binding.
	ErrCodeBadRequest = "APP-010002"
)
