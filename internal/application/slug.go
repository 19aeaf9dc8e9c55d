package application

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	wordSeparatorRe   = regexp.MustCompile(`[\s_/]+`)
	nonAlphanumericRe = regexp.MustCompile(`[^a-z0-9-]`)
	multipleDashRe    = regexp.MustCompile(`-+`)
)

// Slugify converts a post title to a lowercase, URL-safe slug:
// trim and lowercase, separators to dashes, strip everything else,
// collapse and trim dashes.
func Slugify(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = wordSeparatorRe.ReplaceAllString(s, "-")
	s = nonAlphanumericRe.ReplaceAllString(s, "")
	s = multipleDashRe.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// NewSlug derives a unique slug from the title by appending the current
// millisecond timestamp. The suffix disambiguates identical titles and makes
// a regenerated slug observably different from its predecessor.
func NewSlug(title string, now time.Time) string {
	return Slugify(title) + "-" + strconv.FormatInt(now.UnixMilli(), 10)
}
