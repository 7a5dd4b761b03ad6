package categories

import (
	"regexp"
	"strings"
)

var (
	// Characters other than word characters, whitespace and hyphens
	specialChars = regexp.MustCompile(`[^\w\s-]`)
	// Runs of whitespace become a single hyphen
	whitespaceRuns = regexp.MustCompile(`\s+`)
	// Runs of hyphens collapse to one
	hyphenRuns = regexp.MustCompile(`-+`)
)

// GenerateSlug derives the URL slug for a category name, e.g.
// "Mac & Cheese!" -> "mac-cheese". The final trim runs after whitespace has
// already been turned into hyphens; existing category URLs depend on that
// ordering, so it must not be "corrected".
func GenerateSlug(name string) string {
	slug := strings.ToLower(name)
	slug = specialChars.ReplaceAllString(slug, "")
	slug = whitespaceRuns.ReplaceAllString(slug, "-")
	slug = hyphenRuns.ReplaceAllString(slug, "-")
	return strings.TrimSpace(slug)
}
