package model

import (
	"regexp"
	"strings"
	"unicode"
)

// LanguageType classifies the dominant script of a text element. It selects
// which pattern and keyword tables the scorer consults.
type LanguageType int

const (
	LanguageLatin LanguageType = iota
	LanguageJapanese
	LanguageChinese
	LanguageCJK
	LanguageHebrew
	LanguageArabic
	LanguageHindi
)

// String returns a string representation of the language type
func (l LanguageType) String() string {
	switch l {
	case LanguageJapanese:
		return "japanese"
	case LanguageChinese:
		return "chinese"
	case LanguageCJK:
		return "cjk"
	case LanguageHebrew:
		return "hebrew"
	case LanguageArabic:
		return "arabic"
	case LanguageHindi:
		return "hindi"
	default:
		return "latin"
	}
}

// IsCJK reports whether the language belongs to the CJK family
func (l LanguageType) IsCJK() bool {
	return l == LanguageJapanese || l == LanguageChinese || l == LanguageCJK
}

// LayoutThresholds holds the page-coordinate cutoffs used to derive the
// positional properties of a text element. The defaults assume a 612pt
// US-Letter page width; ScaleToPageWidth adjusts them for other geometries.
type LayoutThresholds struct {
	// LeftMarginMax is the maximum X0 for a span to count as left-aligned
	LeftMarginMax float64

	// CenterMinX and CenterMaxX bound the X0 range of a centered span
	CenterMinX float64
	CenterMaxX float64

	// TopRegionMax is the maximum Y0 for a span to count as near the page top
	TopRegionMax float64
}

// referencePageWidth is the US-Letter width the default cutoffs assume.
const referencePageWidth = 612.0

// DefaultLayoutThresholds returns the cutoffs for a US-Letter page
func DefaultLayoutThresholds() LayoutThresholds {
	return LayoutThresholds{
		LeftMarginMax: 100,
		CenterMinX:    200,
		CenterMaxX:    400,
		TopRegionMax:  150,
	}
}

// ScaleToPageWidth rescales the horizontal cutoffs proportionally to the
// given page width. The vertical top-region cutoff is kept as-is since it
// tracks header placement rather than page size. Non-positive widths return
// the thresholds unchanged.
func (t LayoutThresholds) ScaleToPageWidth(width float64) LayoutThresholds {
	if width <= 0 {
		return t
	}
	factor := width / referencePageWidth
	return LayoutThresholds{
		LeftMarginMax: t.LeftMarginMax * factor,
		CenterMinX:    t.CenterMinX * factor,
		CenterMaxX:    t.CenterMaxX * factor,
		TopRegionMax:  t.TopRegionMax,
	}
}

// TextElement is one styled run of text at a known position on one page,
// with font metadata and derived layout properties. Elements are immutable
// once produced by the decoding layer; the analysis pipeline never mutates
// them.
type TextElement struct {
	// Text is the normalized span text (never empty)
	Text string

	// FontName is the raw font name from the document, if known
	FontName string

	// FontSize is the font size in points, rounded to 0.1pt
	FontSize float64

	// Bold and Italic are decoded style flags (false when unknown)
	Bold   bool
	Italic bool

	// BBox is the span's bounding box in top-down page coordinates
	BBox BBox

	// Page is the 1-based page number
	Page int

	// Language is the dominant script classification of Text
	Language LanguageType

	// Derived properties, computed once at construction

	// LeftAligned is true when the span starts within the left margin region
	LeftAligned bool

	// Centered is true when the span starts within the horizontal center band
	Centered bool

	// StartsWithNumber is true for spans opening with a digit-dot numeral ("3.")
	StartsWithNumber bool

	// Uppercase is true when the text is all-caps and longer than 2 characters
	Uppercase bool

	// CharCount and WordCount cache the text length metrics
	CharCount int
	WordCount int
}

var numberedStartRe = regexp.MustCompile(`^\d+\.`)

// NewTextElement builds a TextElement and computes its derived properties
// from the supplied layout thresholds.
func NewTextElement(text, fontName string, fontSize float64, bold, italic bool, bbox BBox, page int, lang LanguageType, th LayoutThresholds) TextElement {
	return TextElement{
		Text:             text,
		FontName:         fontName,
		FontSize:         fontSize,
		Bold:             bold,
		Italic:           italic,
		BBox:             bbox,
		Page:             page,
		Language:         lang,
		LeftAligned:      bbox.X0 < th.LeftMarginMax,
		Centered:         bbox.X0 > th.CenterMinX && bbox.X0 < th.CenterMaxX,
		StartsWithNumber: numberedStartRe.MatchString(text),
		Uppercase:        isUpperText(text),
		CharCount:        len([]rune(text)),
		WordCount:        len(strings.Fields(text)),
	}
}

// isUpperText reports whether text is all-uppercase, contains at least one
// letter, and is longer than 2 characters.
func isUpperText(text string) bool {
	if len([]rune(text)) <= 2 {
		return false
	}
	hasLetter := false
	for _, r := range text {
		if unicode.IsLetter(r) {
			hasLetter = true
			if !unicode.IsUpper(r) {
				return false
			}
		}
	}
	return hasLetter
}
