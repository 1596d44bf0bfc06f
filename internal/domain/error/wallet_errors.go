// Package error defines domain-specific errors for the Glaze finance backend.
package error

import "errors"

// Wallet domain errors.
var (
	// ErrWalletNotFound is returned when a wallet is not found in the system.
	ErrWalletNotFound = errors.New("wallet not found")

	// ErrWalletNameRequired is returned when the wallet name is blank.
	ErrWalletNameRequired = errors.New("wallet name is required")

	// ErrWalletNameTaken is returned when the user already has a wallet with that name.
	ErrWalletNameTaken = errors.New("wallet name already exists")

	// ErrWalletNameTooLong is returned when the wallet name exceeds the maximum length.
	ErrWalletNameTooLong = errors.New("wallet name is too long")

	// ErrInvalidWalletColor is returned when a gradient color is not a hex color.
	ErrInvalidWalletColor = errors.New("wallet color must be a hex color")
)

// WalletErrorCode defines error codes for wallet errors.
// Format: WAL-XXYYYY where XX is category and YYYY is specific error.
type WalletErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeWalletNameRequired WalletErrorCode = "WAL-010001"
	ErrCodeWalletNotFound     WalletErrorCode = "WAL-010002"
	ErrCodeWalletNameTooLong  WalletErrorCode = "WAL-010003"
	ErrCodeInvalidWalletColor WalletErrorCode = "WAL-010004"

	// Conflict errors (03XXXX)
	ErrCodeWalletNameTaken WalletErrorCode = "WAL-030001"

	// Internal errors (99XXXX)
	ErrCodeWalletInternalError WalletErrorCode = "WAL-990001"
)

// WalletError represents a wallet error with code and message.
type WalletError struct {
	Code    WalletErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *WalletError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *WalletError) Unwrap() error {
	return e.Err
}

// NewWalletError creates a new WalletError with the given code and message.
func NewWalletError(code WalletErrorCode, message string, err error) *WalletError {
	return &WalletError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
