package insight

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/glaze-finance/backend/internal/application/usecase/assistant"
	"github.com/glaze-finance/backend/internal/domain/entity"
	domainerror "github.com/glaze-finance/backend/internal/domain/error"
)

// buildInsightPrompt creates the prompt for the daily card.
func buildInsightPrompt(snapshot FinancialSnapshot) (string, error) {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return "", fmt.Errorf("failed to encode snapshot: %w", err)
	}

	var sb strings.Builder
	sb.WriteString(`Role: Kamu adalah "Financial Bestie" untuk Gen Z. Karaktermu: Jujur, agak savage (pedas), pakai bahasa santai/gaul (lo-gue, anjay, menyala, red flag), tapi tetap solutif.

`)
	sb.WriteString("Input Data User: ")
	sb.Write(data)
	sb.WriteString(`

Tugas: Analisis data keuangan user dan buat "Daily Card" pendek.
Aturan Output:
1. Jangan formal! Jangan pakai "Anda" atau "Saya".
2. Gunakan Emoji yang relevan.
3. Output HARUS JSON valid tanpa markdown.

Pilih Tema berdasarkan kondisi keuangan:
- Jika boros (>80% budget): Theme "danger" (Roasting abis-abisan, savage tapi supportive).
- Jika hemat (<40% budget): Theme "success" (Puji setinggi langit/hype, kasih challenge ringan).
- Jika biasa aja: Theme "info" (Kasih tips investasi/lifehack, prediksi spending).

Format JSON (HANYA JSON, tanpa markdown code blocks):
{"theme": "danger" | "success" | "info", "emoji": "single emoji", "title": "Headline pendek (max 4 kata)", "message": "Pesan menohok/lucu (max 2 kalimat)", "buttonText": "Action text pendek (2-3 kata)"}
`)

	return sb.String(), nil
}

// decodeInsight parses and validates the model's card.
func decodeInsight(raw string) (*entity.DailyInsight, error) {
	var card entity.DailyInsight
	if err := json.Unmarshal([]byte(assistant.StripCodeFences(raw)), &card); err != nil {
		return nil, malformed(fmt.Errorf("failed to parse JSON response: %w", err))
	}

	card.Theme = entity.InsightTheme(strings.ToLower(string(card.Theme)))
	if !card.Theme.IsValid() {
		return nil, malformed(fmt.Errorf("unknown theme %q", card.Theme))
	}
	if strings.TrimSpace(card.Title) == "" || strings.TrimSpace(card.Message) == "" {
		return nil, malformed(errors.New("card has no title or message"))
	}

	return &card, nil
}

func malformed(err error) error {
	return domainerror.NewAssistantError(
		domainerror.ErrCodeAIMalformedResponse,
		err.Error(),
		domainerror.ErrAIMalformedResponse,
	)
}
