package transaction

import (
	domainerror "github.com/glaze-finance/backend/internal/domain/error"
)

func notFound() error {
	return domainerror.NewTransactionError(
		domainerror.ErrCodeTransactionNotFound,
		"transaction not found",
		domainerror.ErrTransactionNotFound,
	)
}

// internalError wraps a repository failure so it is answered with a TXN code.
func internalError(message string, err error) error {
	return domainerror.NewTransactionError(domainerror.ErrCodeTransactionInternalError, message, err)
}
