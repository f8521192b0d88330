package text

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

var (
	whitespaceRe    = regexp.MustCompile(`\s+`)
	leadingPunctRe  = regexp.MustCompile(`^[^\p{L}\p{N}\s]+`)
	trailingPunctRe = regexp.MustCompile(`[^\p{L}\p{N}_\s.!?]+$`)
	leadingNumberRe = regexp.MustCompile(`^[\d.\s\-)(]+`)

	titleCaser = cases.Title(language.Und)
)

// Normalize prepares raw span text for analysis: NFKC unicode normalization,
// whitespace collapsing, and removal of leading punctuation runs and of
// trailing punctuation other than sentence-enders.
func Normalize(text string) string {
	text = norm.NFKC.String(text)
	text = whitespaceRe.ReplaceAllString(text, " ")
	text = leadingPunctRe.ReplaceAllString(text, "")
	text = trailingPunctRe.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

// CleanHeading cleans classified heading text for final output: leading
// numeral and punctuation runs are stripped ("2.1 Scope" becomes "Scope"),
// trailing non-word punctuation except sentence-enders is removed,
// whitespace is collapsed, and text that was fully lower- or fully
// upper-case is title-cased for presentation.
func CleanHeading(text string) string {
	text = leadingNumberRe.ReplaceAllString(text, "")
	text = trailingPunctRe.ReplaceAllString(text, "")
	text = strings.TrimSpace(whitespaceRe.ReplaceAllString(text, " "))

	if isAllLower(text) || isAllUpper(text) {
		text = titleCaser.String(text)
	}
	return text
}

// isAllLower reports whether text has cased letters and none are upper
func isAllLower(text string) bool {
	hasCased := false
	for _, r := range text {
		if unicode.IsUpper(r) {
			return false
		}
		if unicode.IsLower(r) {
			hasCased = true
		}
	}
	return hasCased
}

// isAllUpper reports whether text has cased letters and none are lower
func isAllUpper(text string) bool {
	hasCased := false
	for _, r := range text {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			hasCased = true
		}
	}
	return hasCased
}
