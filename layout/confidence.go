package layout

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/Rehan80221/adobe-structure-extractor/model"
	"github.com/Rehan80221/adobe-structure-extractor/text"
)

// Signal weights of the confidence score. They sum to 1.0; the special
// signal can push the raw sum below zero before clamping.
const (
	weightSize     = 0.30
	weightEmphasis = 0.15
	weightPosition = 0.20
	weightPattern  = 0.20
	weightLength   = 0.10
	weightSpecial  = 0.05
)

// headingPatterns match numbered and structural heading openings,
// language-agnostic: decimal numbering, capitalized labels, roman numerals,
// lettered and parenthesized list markers.
var headingPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^\d+\.?\s+`),          // "1. " or "1 "
	regexp.MustCompile(`^\d+\.\d+\.?\s+`),     // "1.1. " or "1.1 "
	regexp.MustCompile(`^\d+\.\d+\.\d+\.?\s+`), // "1.1.1. "
	regexp.MustCompile(`^[A-Z]+\.?\s+`),       // "CHAPTER "
	regexp.MustCompile(`^[IVX]+\.?\s+`),       // roman numerals "I. "
	regexp.MustCompile(`^[a-z]\)?\s+`),        // "a) " or "a "
	regexp.MustCompile(`^\([a-z]\)\s+`),       // "(a) "
	regexp.MustCompile(`^\([0-9]\)\s+`),       // "(1) "
}

// cjkPatterns match chapter/section/article markers and numeral list
// openings in CJK documents.
var cjkPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^第[一二三四五六七八九十\d]+章`),
	regexp.MustCompile(`^第[一二三四五六七八九十\d]+節`),
	regexp.MustCompile(`^第[一二三四五六七八九十\d]+条`),
	regexp.MustCompile(`^[１２３４５６７８９０]+[．。]\s*`),
	regexp.MustCompile(`^[一二三四五六七八九十]+[、．。]\s*`),
}

// titleKeywords are curated per language family; a heading containing one
// is more likely structural.
var (
	latinTitleKeywords = []string{
		"title", "chapter", "part", "section", "introduction",
		"abstract", "summary", "overview", "contents", "index",
	}
	cjkTitleKeywords = []string{
		"タイトル", "題目", "標題", "章", "部", "節", "概要",
		"要約", "目次", "索引", "标题", "章节", "摘要",
	}
)

// titleKeywordsFor resolves the keyword table for a language class
func titleKeywordsFor(lang model.LanguageType) []string {
	if lang.IsCJK() {
		return cjkTitleKeywords
	}
	return latinTitleKeywords
}

// Scorer computes a bounded [0,1] confidence score estimating how
// heading-like a single text element is. Scoring is deterministic and
// side-effect-free; the font hierarchy is an input, never held state.
type Scorer struct {
	thresholds model.LayoutThresholds
}

// NewScorer creates a scorer with the given layout thresholds
func NewScorer(thresholds model.LayoutThresholds) *Scorer {
	return &Scorer{thresholds: thresholds}
}

// Score returns the weighted multi-signal confidence for el under the given
// hierarchy, clamped to [0,1].
func (s *Scorer) Score(el model.TextElement, h FontHierarchy) float64 {
	confidence := sizeScore(el.FontSize, h) * weightSize

	if el.Bold {
		confidence += weightEmphasis
	}

	confidence += s.positionScore(el) * weightPosition
	confidence += patternScore(el.Text, el.Language) * weightPattern
	confidence += lengthScore(el) * weightLength
	confidence += specialScore(el) * weightSpecial

	if confidence > 1 {
		return 1
	}
	if confidence < 0 {
		return 0
	}
	return confidence
}

// sizeScore bands the font size by the hierarchy thresholds. Without a
// derived hierarchy it falls back to fixed print-convention bands.
func sizeScore(fontSize float64, h FontHierarchy) float64 {
	if !h.Valid() {
		switch {
		case fontSize >= 16:
			return 1.0
		case fontSize >= 14:
			return 0.8
		case fontSize >= 12:
			return 0.6
		default:
			return 0.3
		}
	}

	switch {
	case fontSize >= h.TitleSize():
		return 1.0
	case fontSize >= h.H1Size():
		return 0.8
	case fontSize >= h.H2Size():
		return 0.6
	case fontSize >= h.H3Size():
		return 0.4
	default:
		return 0.2
	}
}

// positionScore rewards left-aligned, centered, and near-top placement.
// Left alignment and centering are not mutually exclusive; the sub-sum is
// left unclamped (its practical maximum is 1.0).
func (s *Scorer) positionScore(el model.TextElement) float64 {
	score := 0.0
	if el.LeftAligned {
		score += 0.4
	}
	if el.Centered {
		score += 0.3
	}
	if el.BBox.Y0 < s.thresholds.TopRegionMax {
		score += 0.3
	}
	return score
}

// patternScore scores structural text patterns, strongest first: numbered
// or CJK chapter markers, then title keywords, then all-caps, then a short
// capitalized phrase that does not end a sentence.
func patternScore(raw string, lang model.LanguageType) float64 {
	clean := strings.TrimSpace(raw)
	if clean == "" {
		return 0
	}

	for _, pattern := range headingPatterns {
		if pattern.MatchString(clean) {
			return 0.8
		}
	}

	if lang.IsCJK() {
		for _, pattern := range cjkPatterns {
			if pattern.MatchString(clean) {
				return 0.8
			}
		}
	}

	lower := strings.ToLower(clean)
	for _, keyword := range titleKeywordsFor(lang) {
		if strings.Contains(lower, keyword) {
			return 0.6
		}
	}

	if isUpper(clean) && len([]rune(clean)) > 2 {
		return 0.4
	}

	first, _ := firstRune(clean)
	if unicode.IsUpper(first) &&
		len(strings.Fields(clean)) <= 8 &&
		!strings.HasSuffix(clean, ".") {
		return 0.3
	}

	return 0
}

// lengthScore rewards concise text: headings live in a narrow length band
func lengthScore(el model.TextElement) float64 {
	chars := el.CharCount
	words := el.WordCount

	switch {
	case chars >= 5 && chars <= 50 && words >= 1 && words <= 8:
		return 1.0
	case chars >= 3 && chars <= 100 && words >= 1 && words <= 12:
		return 0.7
	case chars <= 150:
		return 0.4
	default:
		return 0.1
	}
}

// specialScore applies cumulative bonuses and penalties: noise keywords
// (applied at most once), digit-dot numbering, early-page bonus, late-page
// penalty.
func specialScore(el model.TextElement) float64 {
	score := 0.0

	if text.ContainsNoiseKeyword(el.Text) {
		score -= 0.5
	}
	if el.StartsWithNumber {
		score += 0.3
	}
	if el.Page <= 3 {
		score += 0.2
	}
	if el.Page > 20 {
		score -= 0.1
	}

	return score
}

// isUpper reports whether s contains cased letters and none are lowercase
func isUpper(s string) bool {
	hasCased := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			hasCased = true
		}
	}
	return hasCased
}

// firstRune returns the first rune of s
func firstRune(s string) (rune, bool) {
	for _, r := range s {
		return r, true
	}
	return 0, false
}
