// Package lexicon holds the static vocabularies used by analytics and text
// extraction: category styles, keyword tables and Indonesian amount units.
package lexicon

// DefaultCategory is used for empty or unrecognized category names.
const DefaultCategory = "Other"

// Style is the display color and icon of a category.
type Style struct {
	Color string
	Icon  string
}

var categoryStyles = map[string]Style{
	"Food":          {Color: "#F59E0B", Icon: "fast-food"},
	"Drink":         {Color: "#8B5CF6", Icon: "cafe"},
	"Transport":     {Color: "#3B82F6", Icon: "car"},
	"Shopping":      {Color: "#EC4899", Icon: "cart"},
	"Entertainment": {Color: "#10B981", Icon: "game-controller"},
	"Bills":         {Color: "#EF4444", Icon: "receipt"},
	"Health":        {Color: "#14B8A6", Icon: "medkit"},
	"Education":     {Color: "#6366F1", Icon: "school"},
	"Subscription":  {Color: "#F97316", Icon: "film"},
	DefaultCategory: {Color: "#6B7280", Icon: "pricetag"},
}

// CategoryStyle returns the style for name, falling back to the "Other" style.
func CategoryStyle(name string) Style {
	if style, ok := categoryStyles[name]; ok {
		return style
	}
	return categoryStyles[DefaultCategory]
}

// CategoryIcon returns the icon hint stored on new transactions.
func CategoryIcon(name string) string {
	return CategoryStyle(name).Icon
}

// CategoryOrDefault maps an empty category to DefaultCategory.
func CategoryOrDefault(name string) string {
	if name == "" {
		return DefaultCategory
	}
	return name
}

// PromptCategories is the closed category vocabulary given to the language model.
var PromptCategories = []string{
	"Food", "Transport", "Shopping", "Entertainment", "Bills", "Health", "Education", DefaultCategory,
}
