package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType indicates a file extension no normaliser handles.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrExtractorUnavailable indicates no PDF page extractor is configured.
	// PDF files contribute zero chunks without one.
	ErrExtractorUnavailable = errors.New("page extractor unavailable")

	// ErrLLMUnavailable indicates the LLM service is not configured.
	ErrLLMUnavailable = errors.New("LLM service unavailable")

	// ErrRateLimited indicates the LLM provider rejected the request
	// because a rate limit was exceeded.
	ErrRateLimited = errors.New("rate limited")
)
