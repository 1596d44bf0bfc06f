package assistant

import (
	"regexp"
	"strings"
)

type rewriteRule struct {
	pattern     *regexp.Regexp
	replacement string
}

// markdownRules run in order; emphasis is unwrapped before headings and lists.
var markdownRules = []rewriteRule{
	{regexp.MustCompile(`\*\*(.*?)\*\*`), "$1"},
	{regexp.MustCompile(`\*(.*?)\*`), "$1"},
	{regexp.MustCompile(`__(.*?)__`), "$1"},
	{regexp.MustCompile(`_(.*?)_`), "$1"},
	{regexp.MustCompile("`([^`]*)`"), "$1"},
	{regexp.MustCompile(`(?m)^#+\s+`), ""},
	{regexp.MustCompile(`(^|\s)#{1,6}\s+`), "$1"},
	{regexp.MustCompile(`(?m)^\s*[-*+]\s+`), "• "},
}

// StripMarkdown removes emphasis, inline code and heading markers from model
// output and turns list items into bullet characters.
func StripMarkdown(text string) string {
	for _, rule := range markdownRules {
		text = rule.pattern.ReplaceAllString(text, rule.replacement)
	}
	return strings.TrimSpace(text)
}

// StripCodeFences removes ``` and ```json fences around a JSON body.
func StripCodeFences(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	return strings.TrimSpace(text)
}
