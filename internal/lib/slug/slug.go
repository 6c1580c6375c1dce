// Package slug builds and parses the canonical "<title>-by-<artist>"
// content URLs. Slug generation and slug resolution must agree: the
// artist half is always the uploader's username where one exists, never
// the collaboration display string.
package slug

import (
	"strings"
	"unicode"
)

const separator = "-by-"

// Normalize lowercases a slug half, strips everything that is not a
// letter or digit, and collapses the remaining runs into single hyphens.
func Normalize(s string) string {
	var b strings.Builder
	lastHyphen := true // suppress leading hyphen
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastHyphen = false
		} else if !lastHyphen {
			b.WriteByte('-')
			lastHyphen = true
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// Make returns the canonical slug for a song title and artist name.
// With an empty artist the title half stands alone.
func Make(title, artist string) string {
	t := Normalize(title)
	a := Normalize(artist)
	if a == "" {
		return t
	}
	return t + separator + a
}

// Split cuts a slug at the first "-by-" into a title phrase and an
// artist phrase, hyphens restored to spaces. ok is false when the slug
// carries no separator; such slugs never resolve.
func Split(s string) (title, artist string, ok bool) {
	t, a, found := strings.Cut(s, separator)
	if !found || t == "" || a == "" {
		return "", "", false
	}
	return humanize(t), humanize(a), true
}

// Titles returns the title phrase of every possible "-by-" split, in
// order of occurrence. Titles that themselves contain the word "by"
// ("stand-by-me-by-john") only parse correctly at a later split, so the
// title-only resolution tier tries each candidate.
func Titles(s string) []string {
	var titles []string
	for i := 0; ; {
		j := strings.Index(s[i:], separator)
		if j < 0 {
			return titles
		}
		i += j
		if i > 0 {
			titles = append(titles, humanize(s[:i]))
		}
		i += len(separator)
	}
}

func humanize(part string) string {
	return strings.TrimSpace(strings.ReplaceAll(part, "-", " "))
}
