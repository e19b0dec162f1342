package catalog

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize prepares text for substring matching: trim, case-fold and
// strip diacritics so that "Perù" matches "peru".
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}

// searchKey is the precomputed haystack for one record: title, category,
// slug and tags joined, normalized once at load.
func searchKey(r Record) string {
	parts := make([]string, 0, 3+len(r.Tags))
	parts = append(parts, r.Title, r.Category, r.Slug)
	parts = append(parts, r.Tags...)
	return Normalize(strings.Join(parts, " "))
}
