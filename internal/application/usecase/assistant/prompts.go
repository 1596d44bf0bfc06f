package assistant

import (
	"fmt"
	"strings"
)

// chatGreeting is the model turn that follows the persona prompt.
const chatGreeting = "Halo! Aku Glaze AI 💜 Asisten keuanganmu yang siap bantu track spending dan kasih tips hemat. Mau tanya apa nih?"

// buildExtractionPrompt creates the prompt that turns free text into a JSON candidate.
func buildExtractionPrompt(text string, categories, wallets []string) string {
	var sb strings.Builder

	sb.WriteString("You are a financial transaction parser for an Indonesian expense tracker app.\n")
	sb.WriteString(fmt.Sprintf("Parse this transaction text: %q\n\n", text))
	sb.WriteString(`Rules:
- Extract item name, amount in IDR, category, payment source and whether it is income or expense
- Indonesian slang: "rb" or "ribu" = thousand (x1000), "jt" or "juta" = million (x1000000), "k" = thousand
- A comma inside a number is a decimal separator
- Examples: "25rb" = 25000, "1,5jt" = 1500000, "50k" = 50000
`)
	sb.WriteString("- Categories: " + strings.Join(categories, ", ") + "\n")
	sb.WriteString("- Wallets: " + strings.Join(wallets, ", ") + "\n")
	sb.WriteString(`- Default wallet is Cash if not specified
- Type is "income" only for money received (gaji, salary, transfer masuk), otherwise "expense"

Return ONLY valid JSON (no markdown):
{"item": string, "amount": number, "category": string, "source_wallet": string, "type": "income" | "expense"}
`)

	return sb.String()
}

// buildChatSystemPrompt creates the persona prompt, grounded in the user's data when available.
func buildChatSystemPrompt(financialContext string) string {
	var sb strings.Builder

	sb.WriteString(`Kamu adalah Glaze AI ✨, asisten keuangan yang super friendly dan gaul!

Kepribadian kamu:
- Suka pakai emoji yang relevan (tapi jangan berlebihan)
- Pakai bahasa casual + slang Indo ("nih", "sih", "dong", "wkwk", "btw", "gak", "banget")
- Suportif dan encouraging, tapi juga honest
- Suka kasih tips praktis yang actionable
- Kalau user berhasil hemat, kasih apresiasi! 🎉

ATURAN PENTING:
- Jawab SINGKAT dan to the point (2-3 kalimat max, kecuali diminta detail)
- JANGAN pakai markdown formatting seperti ** atau __ atau # atau * untuk list
- Gunakan emoji sebagai pengganti bullet points kalau perlu
- Langsung ke point, jangan basa-basi

`)

	if strings.TrimSpace(financialContext) != "" {
		sb.WriteString("DATA KEUANGAN USER:\n")
		sb.WriteString(financialContext)
	} else {
		sb.WriteString("User belum punya data transaksi.")
	}

	return sb.String()
}
