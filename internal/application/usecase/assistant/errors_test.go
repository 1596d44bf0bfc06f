package assistant

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"google.golang.org/api/googleapi"

	domainerror "github.com/glaze-finance/backend/internal/domain/error"
)

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedCode domainerror.AssistantErrorCode
		expectedErr  error
	}{
		// Timeout/cancellation errors
		{
			name:         "context deadline exceeded",
			err:          context.DeadlineExceeded,
			expectedCode: domainerror.ErrCodeAINetwork,
			expectedErr:  domainerror.ErrAINetwork,
		},
		{
			name:         "wrapped context canceled",
			err:          fmt.Errorf("failed to generate content: %w", context.Canceled),
			expectedCode: domainerror.ErrCodeAINetwork,
			expectedErr:  domainerror.ErrAINetwork,
		},
		// Google API status codes
		{
			name:         "googleapi 429",
			err:          &googleapi.Error{Code: 429, Message: "Resource has been exhausted"},
			expectedCode: domainerror.ErrCodeAIRateLimited,
			expectedErr:  domainerror.ErrAIRateLimited,
		},
		{
			name:         "wrapped googleapi 404",
			err:          fmt.Errorf("failed to generate content: %w", &googleapi.Error{Code: 404, Message: "models/gemini-9 is not found"}),
			expectedCode: domainerror.ErrCodeAIModelUnavailable,
			expectedErr:  domainerror.ErrAIModelUnavailable,
		},
		{
			name:         "googleapi 503",
			err:          &googleapi.Error{Code: 503, Message: "The model is overloaded"},
			expectedCode: domainerror.ErrCodeAIModelUnavailable,
			expectedErr:  domainerror.ErrAIModelUnavailable,
		},
		// Message keywords
		{
			name:         "grpc resource exhausted",
			err:          errors.New("rpc error: code = ResourceExhausted desc = quota exceeded"),
			expectedCode: domainerror.ErrCodeAIRateLimited,
			expectedErr:  domainerror.ErrAIRateLimited,
		},
		{
			name:         "model not supported",
			err:          errors.New("models/gemini-1.0 is not supported for generateContent"),
			expectedCode: domainerror.ErrCodeAIModelUnavailable,
			expectedErr:  domainerror.ErrAIModelUnavailable,
		},
		{
			name:         "connection refused",
			err:          errors.New("dial tcp 142.250.4.95:443: connection refused"),
			expectedCode: domainerror.ErrCodeAINetwork,
			expectedErr:  domainerror.ErrAINetwork,
		},
		{
			name:         "json parse error",
			err:          errors.New("failed to parse JSON response: unexpected end of input"),
			expectedCode: domainerror.ErrCodeAIMalformedResponse,
			expectedErr:  domainerror.ErrAIMalformedResponse,
		},
		{
			name:         "generate is not mistaken for rate",
			err:          errors.New("failed to generate content: blocked by safety settings"),
			expectedCode: domainerror.ErrCodeAIUnknown,
			expectedErr:  domainerror.ErrAIUnknown,
		},
		// Already classified
		{
			name:         "assistant error passes through",
			err:          malformed(errors.New("response has no item")),
			expectedCode: domainerror.ErrCodeAIMalformedResponse,
			expectedErr:  domainerror.ErrAIMalformedResponse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := classifyError(tt.err)

			if result.Code != tt.expectedCode {
				t.Errorf("expected code %s, got %s", tt.expectedCode, result.Code)
			}

			if !errors.Is(result, tt.expectedErr) {
				t.Errorf("expected error to wrap %v, got %v", tt.expectedErr, result.Err)
			}

			if result.Message == "" {
				t.Error("expected message to carry the original error")
			}
		})
	}
}

func TestRetryPolicyPredicates(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		retryable  bool
		switchable bool
	}{
		{name: "rate limited", err: domainerror.ErrAIRateLimited, retryable: true, switchable: true},
		{name: "model unavailable", err: domainerror.ErrAIModelUnavailable, retryable: false, switchable: true},
		{name: "malformed", err: domainerror.ErrAIMalformedResponse, retryable: true, switchable: false},
		{name: "network", err: domainerror.ErrAINetwork, retryable: false, switchable: false},
		{name: "unknown", err: domainerror.ErrAIUnknown, retryable: false, switchable: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := domainerror.NewAssistantError("", "test", tt.err)

			if got := isRetryable(err); got != tt.retryable {
				t.Errorf("isRetryable = %v, want %v", got, tt.retryable)
			}
			if got := isModelSwitchable(err); got != tt.switchable {
				t.Errorf("isModelSwitchable = %v, want %v", got, tt.switchable)
			}
		})
	}
}
