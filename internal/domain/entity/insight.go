package entity

import "time"

// InsightTheme is the tone of a daily insight card.
type InsightTheme string

const (
	InsightThemeDanger  InsightTheme = "danger"
	InsightThemeSuccess InsightTheme = "success"
	InsightThemeInfo    InsightTheme = "info"
)

// IsValid reports whether the theme is one of the known themes.
func (t InsightTheme) IsValid() bool {
	switch t {
	case InsightThemeDanger, InsightThemeSuccess, InsightThemeInfo:
		return true
	}
	return false
}

// DailyInsight is the short motivational card shown once per day.
type DailyInsight struct {
	Theme       InsightTheme `json:"theme"`
	Emoji       string       `json:"emoji"`
	Title       string       `json:"title"`
	Message     string       `json:"message"`
	ButtonText  string       `json:"buttonText"`
	TopCategory string       `json:"topCategory,omitempty"`
	GeneratedAt time.Time    `json:"generatedAt"`
}
