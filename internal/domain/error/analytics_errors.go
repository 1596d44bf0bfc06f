// Package error defines domain-specific errors for the Glaze finance backend.
package error

import "errors"

// Analytics domain errors.
var (
	// ErrInvalidPeriod is returned when the period is not week, month or year.
	ErrInvalidPeriod = errors.New("period must be: week, month, or year")

	// ErrMissingUserID is returned when a request does not name a user.
	ErrMissingUserID = errors.New("user_id is required")

	// ErrInvalidTimeZone is returned when tz is not an IANA zone name.
	ErrInvalidTimeZone = errors.New("tz must be an IANA time zone such as Asia/Jakarta")
)

// AnalyticsErrorCode defines error codes for analytics errors.
// Format: ANL-XXYYYY where XX is category and YYYY is specific error.
type AnalyticsErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidPeriod   AnalyticsErrorCode = "ANL-010001"
	ErrCodeMissingUserID   AnalyticsErrorCode = "ANL-010002"
	ErrCodeInvalidTimeZone AnalyticsErrorCode = "ANL-010003"

	// Internal errors (99XXXX)
	ErrCodeAnalyticsInternalError AnalyticsErrorCode = "ANL-990001"
)

// AnalyticsError represents an analytics error with code and message.
type AnalyticsError struct {
	Code    AnalyticsErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AnalyticsError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AnalyticsError) Unwrap() error {
	return e.Err
}

// NewAnalyticsError creates a new AnalyticsError with the given code and message.
func NewAnalyticsError(code AnalyticsErrorCode, message string, err error) *AnalyticsError {
	return &AnalyticsError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
