package assistant

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/glaze-finance/backend/internal/application/adapter"
	domainerror "github.com/glaze-finance/backend/internal/domain/error"
)

// ConnectionErrorReply is returned when the model fails for a reason other than throttling.
const ConnectionErrorReply = "Maaf, ada masalah dengan koneksi. Coba lagi ya! 🙏"

// DemoReply is returned in fallback mode when no canned response matches.
const DemoReply = "Aku dalam mode demo nih. Tambahkan Gemini API key di .env untuk fitur AI lengkap! 🤖"

type cannedReply struct {
	keywords []string
	reply    string
}

// cannedReplies are checked in order against the lower-cased message.
var cannedReplies = []cannedReply{
	{
		keywords: []string{"spending", "pengeluaran"},
		reply:    "Dari data kamu, pengeluaran terbesar ada di kategori Food nih. Coba kurangi jajan di luar ya! 💡",
	},
	{
		keywords: []string{"saving", "nabung", "tips"},
		reply:    "Tips hemat: coba sisihkan 20% gaji di awal bulan ke rekening terpisah. Small steps, big impact! 🎯",
	},
	{
		keywords: []string{"budget", "goal"},
		reply:    "Kamu sudah pakai 65% dari budget bulanan. Masih aman sih, tapi tetap hati-hati ya! 📊",
	},
	{
		keywords: []string{"trend"},
		reply:    "Spending trend kamu stabil kok bulan ini. Keep up the good work! 📈",
	},
}

// ChatService answers free-form questions about the user's finances.
type ChatService struct {
	model   adapter.LanguageModel
	gateway *Gateway
}

// NewChatService creates a new ChatService instance.
func NewChatService(model adapter.LanguageModel, gateway *Gateway) *ChatService {
	return &ChatService{
		model:   model,
		gateway: gateway,
	}
}

// Chat returns the assistant's reply with markdown removed. It never fails:
// without a model or after the retry budget it answers from the canned
// replies, and on other errors it apologizes.
func (s *ChatService) Chat(ctx context.Context, message, financialContext string) string {
	if s.model == nil || !s.model.IsAvailable() {
		return demoChatReply(message)
	}

	history := []adapter.ChatTurn{
		{Role: adapter.ChatRoleUser, Text: buildChatSystemPrompt(financialContext)},
		{Role: adapter.ChatRoleModel, Text: chatGreeting},
	}

	var reply string
	err := s.gateway.Execute(ctx, "chat", func(ctx context.Context, model string) error {
		raw, err := s.model.Generate(ctx, &adapter.GenerationRequest{
			Model:   model,
			Prompt:  message,
			History: history,
		})
		if err != nil {
			return err
		}
		reply = raw
		return nil
	})
	if err != nil {
		if errors.Is(err, domainerror.ErrAIRetriesExhausted) {
			return demoChatReply(message)
		}
		slog.Error("chat request failed", "error", err)
		return ConnectionErrorReply
	}

	return StripMarkdown(reply)
}

// demoChatReply picks the first canned reply whose keyword appears in message.
func demoChatReply(message string) string {
	lower := strings.ToLower(message)
	for _, canned := range cannedReplies {
		if containsAny(lower, canned.keywords) {
			return canned.reply
		}
	}
	return DemoReply
}
