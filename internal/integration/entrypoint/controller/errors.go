package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerror "github.com/glaze-finance/backend/internal/domain/error"
	"github.com/glaze-finance/backend/internal/integration/entrypoint/dto"
)

// handleError writes the response for a use case error. Domain errors keep
// their code; anything else is logged and reported as an internal error.
func handleError(ctx *gin.Context, err error) {
	var (
		analyticsErr   *domainerror.AnalyticsError
		assistantErr   *domainerror.AssistantError
		transactionErr *domainerror.TransactionError
		walletErr      *domainerror.WalletError
	)

	switch {
	case errors.As(err, &analyticsErr):
		respond(ctx, err, statusForAnalyticsError(analyticsErr.Code), analyticsErr.Message, string(analyticsErr.Code))
	case errors.As(err, &assistantErr):
		respond(ctx, err, statusForAssistantError(assistantErr.Code), assistantErr.Message, string(assistantErr.Code))
	case errors.As(err, &transactionErr):
		respond(ctx, err, statusForTransactionError(transactionErr.Code), transactionErr.Message, string(transactionErr.Code))
	case errors.As(err, &walletErr):
		respond(ctx, err, statusForWalletError(walletErr.Code), walletErr.Message, string(walletErr.Code))
	default:
		respond(ctx, err, http.StatusInternalServerError, "An internal error occurred", "")
	}
}

func respond(ctx *gin.Context, err error, status int, message, code string) {
	if status >= http.StatusInternalServerError {
		slog.Error("request failed",
			"method", ctx.Request.Method,
			"path", ctx.FullPath(),
			"error", err,
		)
	}
	ctx.JSON(status, dto.ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// statusForAnalyticsError maps analytics error codes to HTTP status codes.
func statusForAnalyticsError(code domainerror.AnalyticsErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidPeriod,
		domainerror.ErrCodeMissingUserID,
		domainerror.ErrCodeInvalidTimeZone:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// statusForAssistantError maps assistant error codes to HTTP status codes.
func statusForAssistantError(code domainerror.AssistantErrorCode) int {
	switch code {
	case domainerror.ErrCodeEmptyInput:
		return http.StatusBadRequest
	case domainerror.ErrCodeTooManyRequests:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// statusForTransactionError maps transaction error codes to HTTP status codes.
func statusForTransactionError(code domainerror.TransactionErrorCode) int {
	switch code {
	case domainerror.ErrCodeTransactionNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidTransactionTitle,
		domainerror.ErrCodeInvalidTransactionAmount,
		domainerror.ErrCodeInvalidTransactionType,
		domainerror.ErrCodeInvalidTransactionDate:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// statusForWalletError maps wallet error codes to HTTP status codes.
func statusForWalletError(code domainerror.WalletErrorCode) int {
	switch code {
	case domainerror.ErrCodeWalletNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeWalletNameTaken:
		return http.StatusConflict
	case domainerror.ErrCodeWalletNameRequired,
		domainerror.ErrCodeWalletNameTooLong,
		domainerror.ErrCodeInvalidWalletColor:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
