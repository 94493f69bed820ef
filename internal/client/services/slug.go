package services

import (
	"regexp"
	"strings"
)

const slugMaxLen = 32

var (
	slugNonAlnum   = regexp.MustCompile(`[^a-zA-Z\d\s]+`)
	slugWhitespace = regexp.MustCompile(`\s`)
)

// Slugify derives the document id for a post from its title: trim,
// lowercase, collapse every run of non-alphanumerics to a single hyphen,
// turn whitespace into hyphens, truncate to 32 bytes. Total and
// deterministic; it never fails.
func Slugify(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = slugNonAlnum.ReplaceAllString(s, "-")
	s = slugWhitespace.ReplaceAllString(s, "-")
	if len(s) > slugMaxLen {
		s = s[:slugMaxLen]
	}
	return s
}
