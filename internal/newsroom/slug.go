package newsroom

import (
	"regexp"
	"strings"
)

var (
	slugDisallowed = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugWhitespace = regexp.MustCompile(`\s+`)
	slugHyphenRuns = regexp.MustCompile(`-+`)
)

// Slugify normalizes text into a URL-safe token: lower-case, strip
// everything outside [a-z0-9\s-], whitespace runs become a single hyphen,
// hyphen runs collapse, leading/trailing hyphens are trimmed.
// Empty input yields an empty token.
func Slugify(text string) string {
	slug := strings.ToLower(text)
	slug = slugDisallowed.ReplaceAllString(slug, "")
	slug = slugWhitespace.ReplaceAllString(slug, "-")
	slug = slugHyphenRuns.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}
