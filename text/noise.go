package text

import (
	"regexp"
	"strings"
)

// noiseKeywords are substrings that mark text as unlikely to be a heading:
// captions, running headers/footers, and boilerplate.
var noiseKeywords = []string{
	"page", "figure", "table", "appendix", "reference", "bibliography",
	"footnote", "header", "footer", "copyright", "rights", "reserved",
}

// noisePatterns match whole spans that are structural noise rather than
// content: page numbers, caption labels, standalone numbers, bare
// punctuation.
var noisePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^page\s+\d+$`),
	regexp.MustCompile(`^figure\s+\d+`),
	regexp.MustCompile(`^table\s+\d+`),
	regexp.MustCompile(`^appendix\s+[a-z]$`),
	regexp.MustCompile(`^\d{1,3}$`),
	regexp.MustCompile(`^[^\p{L}\p{N}\s]*$`),
}

var punctRe = regexp.MustCompile(`[^\p{L}\p{N}_\s]`)

const (
	minSpanLength = 2
	maxSpanLength = 200
)

// ContainsNoiseKeyword reports whether text contains any noise keyword,
// case-insensitively.
func ContainsNoiseKeyword(text string) bool {
	lower := strings.ToLower(text)
	for _, keyword := range noiseKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

// IsNoise reports whether a span should be rejected at the extraction
// boundary: matches a noise pattern, is out of length bounds, or consists
// mostly of punctuation.
func IsNoise(text string) bool {
	lower := strings.ToLower(strings.TrimSpace(text))

	for _, pattern := range noisePatterns {
		if pattern.MatchString(lower) {
			return true
		}
	}

	runes := []rune(text)
	if len(runes) < minSpanLength || len(runes) > maxSpanLength {
		return true
	}

	// Mostly punctuation
	stripped := punctRe.ReplaceAllString(text, "")
	if len([]rune(stripped))*2 < len(runes) {
		return true
	}

	return false
}
