package service

import (
	"regexp"
	"strings"
)

var (
	slugInvalidRuns = regexp.MustCompile(`[^a-z0-9]+`)
	slugPattern     = regexp.MustCompile(`^[a-z0-9-]+$`)
)

// Slugify derives a URL slug from a product name: lowercase, runs of
// non-alphanumeric characters collapsed to single hyphens, edge hyphens
// trimmed. Called explicitly before persistence; models carry no hooks.
func Slugify(name string) string {
	lowered := strings.ToLower(strings.TrimSpace(name))
	hyphenated := slugInvalidRuns.ReplaceAllString(lowered, "-")
	return strings.Trim(hyphenated, "-")
}

// IsValidSlug reports whether an explicitly supplied slug uses only the
// allowed charset.
func IsValidSlug(slug string) bool {
	return slugPattern.MatchString(slug)
}
