// Package error defines domain-specific errors for the Glaze finance backend.
package error

import "errors"

// Assistant (text extraction and chat) domain errors.
var (
	// ErrEmptyInput is returned when the text to parse or the chat message is blank.
	ErrEmptyInput = errors.New("input text cannot be empty")

	// ErrAINotConfigured is returned when no API key is configured for the language model.
	ErrAINotConfigured = errors.New("ai service is not configured")

	// ErrAIRateLimited is returned when the language model rejects a request for quota reasons.
	ErrAIRateLimited = errors.New("ai service rate limited")

	// ErrAIModelUnavailable is returned when the requested model is missing or unavailable.
	ErrAIModelUnavailable = errors.New("ai model unavailable")

	// ErrAIMalformedResponse is returned when the model output is not the expected JSON.
	ErrAIMalformedResponse = errors.New("ai response is malformed")

	// ErrAINetwork is returned when the language model cannot be reached.
	ErrAINetwork = errors.New("ai service unreachable")

	// ErrAIRetriesExhausted is returned when the retry budget is spent.
	ErrAIRetriesExhausted = errors.New("ai retries exhausted")

	// ErrAIUnknown is returned for any other language model failure.
	ErrAIUnknown = errors.New("ai service error")
)

// AssistantErrorCode defines error codes for assistant errors.
// Format: AST-XXYYYY where XX is category and YYYY is specific error.
type AssistantErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeEmptyInput AssistantErrorCode = "AST-010001"

	// External service errors (02XXXX)
	ErrCodeAINotConfigured     AssistantErrorCode = "AST-020001"
	ErrCodeAIRateLimited       AssistantErrorCode = "AST-020002"
	ErrCodeAIModelUnavailable  AssistantErrorCode = "AST-020003"
	ErrCodeAIMalformedResponse AssistantErrorCode = "AST-020004"
	ErrCodeAINetwork           AssistantErrorCode = "AST-020005"
	ErrCodeAIRetriesExhausted  AssistantErrorCode = "AST-020006"
	ErrCodeAIUnknown           AssistantErrorCode = "AST-020007"

	// Throttling errors (03XXXX)
	ErrCodeTooManyRequests AssistantErrorCode = "AST-030001"
)

// AssistantError represents an assistant error with code and message.
type AssistantError struct {
	Code    AssistantErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AssistantError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AssistantError) Unwrap() error {
	return e.Err
}

// NewAssistantError creates a new AssistantError with the given code and message.
func NewAssistantError(code AssistantErrorCode, message string, err error) *AssistantError {
	return &AssistantError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
