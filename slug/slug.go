// Package slug derives the canonical URL-safe identifier of an anime title.
//
// Slugs are route segments (/anime/{slug}) and cache keys. They are not unique across the
// catalog: titles that differ only in punctuation map to the same slug, and lookups always
// re-derive the slug from the title instead of consulting an index.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// "7.2" becomes "7-2" so "Golden Kamuy 4.5" does not collide with "Golden Kamuy 45".
	decimalPoint = regexp.MustCompile(`(\d)\.(\d)`)
	separators   = regexp.MustCompile(`[^a-z0-9]+`)
)

// Make returns the slug of title. The result only contains [a-z0-9-], never starts or ends
// with a hyphen and never contains "--". An empty result means the title has no usable
// characters and must be treated as not found.
func Make(title string) string {
	s := stripMarks(title)
	s = strings.ToLower(s)
	// Applied twice: a single pass cannot rewrite overlapping matches such as "1.2.3".
	s = decimalPoint.ReplaceAllString(s, "$1-$2")
	s = decimalPoint.ReplaceAllString(s, "$1-$2")
	s = separators.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// Route returns the canonical path of the anime with the given title.
func Route(title string) string {
	return "/anime/" + Make(title)
}

// Valid reports whether s is already a well-formed, non-empty slug.
func Valid(s string) bool {
	return s != "" && Make(s) == s
}

func stripMarks(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
