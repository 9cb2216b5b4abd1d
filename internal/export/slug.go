package export

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	// slugRegex matches characters that should be replaced with hyphens
	slugRegex = regexp.MustCompile(`[^a-z0-9]+`)
	// multiHyphenRegex matches multiple consecutive hyphens
	multiHyphenRegex = regexp.MustCompile(`-+`)
)

// Slugify converts a snapshot title into a file-name-friendly slug.
// Rules:
// - Lowercase
// - Replace spaces with hyphens
// - Remove special chars (keep a-z, 0-9, hyphen)
// - Collapse multiple hyphens
// - Trim leading/trailing hyphens
// - Max length: 50 chars
//
// Examples:
//
//	"Deploy Commands, March" -> "deploy-commands-march"
//	"Fix: Bug #123!" -> "fix-bug-123"
func Slugify(title string) string {
	if title == "" {
		return ""
	}

	// Handle unicode: title-case first so cased letters fold predictably
	caser := cases.Title(language.English)
	result := caser.String(strings.TrimSpace(title))

	result = strings.ToLower(result)
	result = slugRegex.ReplaceAllString(result, "-")
	result = multiHyphenRegex.ReplaceAllString(result, "-")
	result = strings.Trim(result, "-")

	if len(result) > 50 {
		// Find the last hyphen before 50 chars to avoid cutting a word
		cutoff := 50
		if idx := strings.LastIndex(result[:cutoff], "-"); idx > 0 {
			cutoff = idx
		}
		result = result[:cutoff]
	}

	return result
}
