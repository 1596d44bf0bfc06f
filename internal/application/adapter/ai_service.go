// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// ChatRole identifies the author of a conversation turn.
type ChatRole string

const (
	ChatRoleUser  ChatRole = "user"
	ChatRoleModel ChatRole = "model"
)

// ChatTurn is one message of prior conversation sent along with a prompt.
type ChatTurn struct {
	Role ChatRole
	Text string
}

// GenerationRequest represents a single text-generation call.
type GenerationRequest struct {
	Model        string
	Prompt       string
	History      []ChatTurn // Optional prior turns, oldest first
	JSONResponse bool       // Ask the model for a JSON-only body
}

// LanguageModel defines the interface for hosted text-generation operations.
type LanguageModel interface {
	// Generate sends one request to the named model and returns its raw text.
	Generate(ctx context.Context, request *GenerationRequest) (string, error)

	// IsAvailable checks if the language model is properly configured.
	IsAvailable() bool
}
