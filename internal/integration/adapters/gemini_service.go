// Package adapters provides implementations for external service integrations.
package adapters

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/glaze-finance/backend/internal/application/adapter"
)

// DefaultTemperature is used when no temperature is configured.
const DefaultTemperature float32 = 0.3

// GeminiService implements adapter.LanguageModel using Google Gemini.
type GeminiService struct {
	apiKey      string
	temperature float32
}

// NewGeminiService creates a new Gemini service instance.
// An empty API key yields a service that reports itself unavailable.
func NewGeminiService(apiKey string, temperature float32) *GeminiService {
	if temperature <= 0 {
		temperature = DefaultTemperature
	}
	return &GeminiService{
		apiKey:      apiKey,
		temperature: temperature,
	}
}

// IsAvailable checks if the Gemini service is available and properly configured.
func (s *GeminiService) IsAvailable() bool {
	return s.apiKey != ""
}

// Generate sends one prompt to the requested model and returns its text.
// Errors from the Gemini SDK are returned as-is so callers can classify them.
func (s *GeminiService) Generate(ctx context.Context, request *adapter.GenerationRequest) (string, error) {
	if !s.IsAvailable() {
		return "", errors.New("gemini service is not configured")
	}
	if request == nil || request.Model == "" {
		return "", errors.New("gemini request has no model")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return "", fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(request.Model)
	model.SetTemperature(s.temperature)
	if request.JSONResponse {
		model.ResponseMIMEType = "application/json"
	}

	var resp *genai.GenerateContentResponse
	if len(request.History) > 0 {
		chat := model.StartChat()
		chat.History = toContents(request.History)
		resp, err = chat.SendMessage(ctx, genai.Text(request.Prompt))
	} else {
		resp, err = model.GenerateContent(ctx, genai.Text(request.Prompt))
	}
	if err != nil {
		return "", err
	}

	return responseText(resp)
}

func toContents(history []adapter.ChatTurn) []*genai.Content {
	contents := make([]*genai.Content, 0, len(history))
	for _, turn := range history {
		contents = append(contents, &genai.Content{
			Role:  string(turn.Role),
			Parts: []genai.Part{genai.Text(turn.Text)},
		})
	}
	return contents
}

// responseText joins the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errors.New("failed to decode gemini response: no candidates")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}

	if sb.Len() == 0 {
		return "", errors.New("failed to decode gemini response: no text content")
	}
	return sb.String(), nil
}
