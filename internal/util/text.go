package util

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	reParens = regexp.MustCompile(`\([^()]*\)`)
	reSpaces = regexp.MustCompile(`\s+`)

	stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
)

// NormalizeName canonicalizes a display name for matching: parenthetical
// annotations removed (innermost-out, so nested parentheses collapse too),
// whitespace runs collapsed, trimmed, lowercased, diacritics stripped to
// their base letters. Total and idempotent; garbage in degrades to a
// lowercased trim, never an error.
func NormalizeName(input string) string {
	s := input
	for {
		next := reParens.ReplaceAllString(s, " ")
		if next == s {
			break
		}
		s = next
	}
	s = reSpaces.ReplaceAllString(s, " ")
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	if out, _, err := transform.String(stripAccents, s); err == nil {
		s = out
	}
	return s
}

// NameKey is the tier-2 comparison key: NormalizeName plus rotation of a
// "last, first" form into "first last", so that "Doe, Jane (D-CA)" and
// "Jane Doe" key identically.
func NameKey(input string) string {
	s := NormalizeName(input)
	if i := strings.Index(s, ","); i >= 0 {
		last := strings.TrimSpace(s[:i])
		first := strings.TrimSpace(s[i+1:])
		if last != "" && first != "" {
			return first + " " + last
		}
	}
	return s
}

// SplitDisplayName splits a combined "Last, First" display name on the first
// comma. Without a comma the whole string is the last name. Embedded line
// breaks and runs of whitespace are cleaned from both parts.
func SplitDisplayName(name string) (last, first string) {
	last = name
	if i := strings.Index(name, ","); i >= 0 {
		last = name[:i]
		first = name[i+1:]
	}
	return collapseSpaces(last), collapseSpaces(first)
}

func collapseSpaces(s string) string {
	return strings.TrimSpace(reSpaces.ReplaceAllString(s, " "))
}
