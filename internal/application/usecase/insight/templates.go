package insight

import (
	"fmt"

	"github.com/glaze-finance/backend/internal/domain/entity"
)

const (
	// dangerThreshold is the budget usage above which the card scolds.
	dangerThreshold = 80
	// successThreshold is the budget usage below which the card praises.
	successThreshold = 40
)

type cardTemplate struct {
	emoji      string
	title      string
	message    func(s FinancialSnapshot) string
	buttonText string
}

var dangerTemplates = []cardTemplate{
	{
		emoji: "🚩",
		title: "Red Flag Banget",
		message: func(s FinancialSnapshot) string {
			return fmt.Sprintf("Lo check-out apaan aja sih woy? Udah %d%% budget kepake. %s nyedot duit paling banyak nih!", s.BudgetUsedPercent, s.TopCategory)
		},
		buttonText: "Lihat Buktinya",
	},
	{
		emoji: "💀",
		title: "RIP Dompet Lo",
		message: func(s FinancialSnapshot) string {
			return fmt.Sprintf("Spending lo di %s udah kayak sultan. Padahal budget tinggal %d%% doang!", s.TopCategory, 100-s.BudgetUsedPercent)
		},
		buttonText: "Liat Dosa Gue",
	},
	{
		emoji: "🔥",
		title: "Duit Lo Kebakar",
		message: func(s FinancialSnapshot) string {
			return fmt.Sprintf("Anjay %d%% budget udah lenyap! Kategori %s jadi biang keroknya.", s.BudgetUsedPercent, s.TopCategory)
		},
		buttonText: "Cek Sekarang",
	},
}

var successTemplates = []cardTemplate{
	{
		emoji: "💅",
		title: "Menyala Abangkuh",
		message: func(s FinancialSnapshot) string {
			return fmt.Sprintf("Dompet lo tebel banget minggu ini! Baru pake %d%% budget. Gas reward diri sendiri (dikit aja tapi)!", s.BudgetUsedPercent)
		},
		buttonText: "Gas Reward",
	},
	{
		emoji: "👑",
		title: "Sultan Mode ON",
		message: func(s FinancialSnapshot) string {
			return fmt.Sprintf("Hemat parah lo! Cuma %d%% budget kepake. Challenge: bertahan sampe akhir bulan ya!", s.BudgetUsedPercent)
		},
		buttonText: "Terima Challenge",
	},
	{
		emoji: "✨",
		title: "Slay Banget Sih",
		message: func(s FinancialSnapshot) string {
			return fmt.Sprintf("Financial goals lo on track! %d%% budget masih aman. Keep it up bestie!", 100-s.BudgetUsedPercent)
		},
		buttonText: "Lihat Progress",
	},
}

var infoTemplates = []cardTemplate{
	{
		emoji: "🧠",
		title: "Info Penting Nih",
		message: func(s FinancialSnapshot) string {
			return fmt.Sprintf("Budget lo udah %d%%. Spending terbesar di %s. Mau atur budget biar lebih aman?", s.BudgetUsedPercent, s.TopCategory)
		},
		buttonText: "Atur Budget",
	},
	{
		emoji: "📊",
		title: "Update Keuangan",
		message: func(s FinancialSnapshot) string {
			return fmt.Sprintf("So far so good! %d%% budget kepake. Pro tip: sisihkan 20%% income buat saving!", s.BudgetUsedPercent)
		},
		buttonText: "Lihat Tips",
	},
	{
		emoji: "💡",
		title: "Quick Insight",
		message: func(s FinancialSnapshot) string {
			return fmt.Sprintf("Pengeluaran lo normal nih (%d%%). Tapi awas sama %s, jangan sampe kebablasan!", s.BudgetUsedPercent, s.TopCategory)
		},
		buttonText: "Cek Detail",
	},
}

// FallbackInsight writes a card from fixed templates. pick chooses one of n
// templates for the snapshot's theme.
func FallbackInsight(snapshot FinancialSnapshot, pick func(n int) int) *entity.DailyInsight {
	theme, templates := entity.InsightThemeInfo, infoTemplates
	switch {
	case snapshot.BudgetUsedPercent > dangerThreshold:
		theme, templates = entity.InsightThemeDanger, dangerTemplates
	case snapshot.BudgetUsedPercent < successThreshold:
		theme, templates = entity.InsightThemeSuccess, successTemplates
	}

	idx := pick(len(templates))
	if idx < 0 || idx >= len(templates) {
		idx = 0
	}
	t := templates[idx]

	return &entity.DailyInsight{
		Theme:       theme,
		Emoji:       t.emoji,
		Title:       t.title,
		Message:     t.message(snapshot),
		ButtonText:  t.buttonText,
		TopCategory: snapshot.TopCategory,
	}
}
