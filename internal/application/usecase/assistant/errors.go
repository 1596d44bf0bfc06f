// Package assistant contains the language-model backed use cases: text
// extraction, chat and the shared request gateway.
package assistant

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"google.golang.org/api/googleapi"

	domainerror "github.com/glaze-finance/backend/internal/domain/error"
)

var (
	rateLimitKeywords = []string{
		"429", "quota", "rate limit", "ratelimit", "too many requests",
		"resource exhausted", "resource_exhausted", "resourceexhausted",
	}
	modelKeywords = []string{
		"not found", "notfound", "not_found", "not supported", "unsupported", "unavailable", "503",
	}
	networkKeywords = []string{
		"connection", "network", "dial", "timeout", "no such host", "eof", "tls",
	}
	malformedKeywords = []string{
		"json", "unmarshal", "decode", "parse", "invalid character",
	}
)

// classifyError converts a raw language model error into an AssistantError
// whose Err is one of the assistant sentinels.
func classifyError(err error) *domainerror.AssistantError {
	var assistantErr *domainerror.AssistantError
	if errors.As(err, &assistantErr) {
		return assistantErr
	}

	// Check for timeout/cancellation (context errors)
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return wrap(domainerror.ErrCodeAINetwork, err, domainerror.ErrAINetwork)
	}

	// Check the HTTP status reported by the Google API
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusTooManyRequests:
			return wrap(domainerror.ErrCodeAIRateLimited, err, domainerror.ErrAIRateLimited)
		case http.StatusNotFound, http.StatusNotImplemented, http.StatusServiceUnavailable:
			return wrap(domainerror.ErrCodeAIModelUnavailable, err, domainerror.ErrAIModelUnavailable)
		}
	}

	errStr := strings.ToLower(err.Error())

	switch {
	case containsAny(errStr, rateLimitKeywords):
		return wrap(domainerror.ErrCodeAIRateLimited, err, domainerror.ErrAIRateLimited)
	case containsAny(errStr, modelKeywords):
		return wrap(domainerror.ErrCodeAIModelUnavailable, err, domainerror.ErrAIModelUnavailable)
	case containsAny(errStr, networkKeywords):
		return wrap(domainerror.ErrCodeAINetwork, err, domainerror.ErrAINetwork)
	case containsAny(errStr, malformedKeywords):
		return wrap(domainerror.ErrCodeAIMalformedResponse, err, domainerror.ErrAIMalformedResponse)
	default:
		return wrap(domainerror.ErrCodeAIUnknown, err, domainerror.ErrAIUnknown)
	}
}

// malformed marks a response that could not be decoded.
func malformed(err error) *domainerror.AssistantError {
	return wrap(domainerror.ErrCodeAIMalformedResponse, err, domainerror.ErrAIMalformedResponse)
}

func wrap(code domainerror.AssistantErrorCode, cause, sentinel error) *domainerror.AssistantError {
	return domainerror.NewAssistantError(code, cause.Error(), sentinel)
}

func containsAny(s string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}

// isRetryable reports whether the error may succeed on the same model after a pause.
func isRetryable(err error) bool {
	return errors.Is(err, domainerror.ErrAIRateLimited) || errors.Is(err, domainerror.ErrAIMalformedResponse)
}

// isModelSwitchable reports whether a different model might accept the request.
func isModelSwitchable(err error) bool {
	return errors.Is(err, domainerror.ErrAIRateLimited) || errors.Is(err, domainerror.ErrAIModelUnavailable)
}
