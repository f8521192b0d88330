package layout

import (
	"regexp"
	"sort"

	"github.com/Rehan80221/adobe-structure-extractor/model"
	"github.com/Rehan80221/adobe-structure-extractor/text"
)

// Default confidence thresholds of the classifier
const (
	// DefaultMinConfidence is the global minimum score for an element to
	// become a heading candidate.
	DefaultMinConfidence = 0.4

	// DefaultTitleConfidence is the minimum score for title-level
	// classification.
	DefaultTitleConfidence = 0.6
)

// Fallback numbering patterns used when the font size matches no level band
var (
	h1NumberRe = regexp.MustCompile(`^\d+\.?\s+`)
	h2NumberRe = regexp.MustCompile(`^\d+\.\d+\.?\s+`)
	h3NumberRe = regexp.MustCompile(`^\d+\.\d+\.\d+\.?\s+`)
)

// candidate is a text element that passed the minimum-confidence filter and
// awaits level assignment. Transient within one classification pass.
type candidate struct {
	element    model.TextElement
	confidence float64
}

// Classifier filters scored elements and assigns heading levels. It is
// stateless across documents; the title-uniqueness constraint lives in the
// classification pass, not on the classifier.
type Classifier struct {
	scorer          *Scorer
	minConfidence   float64
	titleConfidence float64
}

// NewClassifier creates a classifier using the given scorer and the default
// confidence thresholds.
func NewClassifier(scorer *Scorer) *Classifier {
	return &Classifier{
		scorer:          scorer,
		minConfidence:   DefaultMinConfidence,
		titleConfidence: DefaultTitleConfidence,
	}
}

// NewClassifierWithThresholds creates a classifier with custom confidence
// thresholds. Non-positive values fall back to the defaults.
func NewClassifierWithThresholds(scorer *Scorer, minConfidence, titleConfidence float64) *Classifier {
	c := NewClassifier(scorer)
	if minConfidence > 0 {
		c.minConfidence = minConfidence
	}
	if titleConfidence > 0 {
		c.titleConfidence = titleConfidence
	}
	return c
}

// Classify runs the two-pass classification over all pages: candidate
// selection by minimum confidence, then a single deterministic level
// assignment pass in (page, confidence descending, vertical position) order.
// At most one element per document receives the title level.
func (c *Classifier) Classify(pages [][]model.TextElement, h FontHierarchy) []model.ClassifiedHeading {
	candidates := c.selectCandidates(pages, h)

	var classified []model.ClassifiedHeading
	titleFound := false

	for _, cand := range candidates {
		level, ok := c.assignLevel(cand, h, titleFound)
		if !ok {
			continue
		}
		classified = append(classified, model.ClassifiedHeading{
			Level:      level,
			Text:       cand.element.Text,
			Page:       cand.element.Page,
			Confidence: cand.confidence,
			FontSize:   cand.element.FontSize,
		})
		if level == model.LevelTitle {
			titleFound = true
		}
	}

	return classified
}

// selectCandidates scores every element and keeps those at or above the
// minimum confidence, sorted by (page ascending, confidence descending,
// vertical position ascending). The ordering establishes both evaluation
// order and final tie-breaking.
func (c *Classifier) selectCandidates(pages [][]model.TextElement, h FontHierarchy) []candidate {
	var candidates []candidate
	for _, page := range pages {
		for _, el := range page {
			confidence := c.scorer.Score(el, h)
			if confidence >= c.minConfidence {
				candidates = append(candidates, candidate{element: el, confidence: confidence})
			}
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.element.Page != b.element.Page {
			return a.element.Page < b.element.Page
		}
		if a.confidence != b.confidence {
			return a.confidence > b.confidence
		}
		return a.element.BBox.Y0 < b.element.BBox.Y0
	})

	return candidates
}

// assignLevel evaluates the level rules for one candidate; first matching
// rule wins. No backtracking or re-scoring.
func (c *Classifier) assignLevel(cand candidate, h FontHierarchy, titleFound bool) (model.Level, bool) {
	el := cand.element

	// Rule 1: title, at most once per document, early pages only.
	if !titleFound &&
		el.Page <= 2 &&
		cand.confidence >= c.titleConfidence &&
		el.FontSize >= h.TitleSize()-1 &&
		el.WordCount <= 10 &&
		!text.ContainsNoiseKeyword(el.Text) {
		return model.LevelTitle, true
	}

	// Rule 2: level by font size band, with a half-point tolerance.
	switch {
	case el.FontSize >= h.H1Size()-0.5:
		return model.LevelH1, true
	case el.FontSize >= h.H2Size()-0.5:
		return model.LevelH2, true
	case el.FontSize >= h.H3Size()-0.5:
		return model.LevelH3, true
	}

	// Rule 3: fallback on decimal numbering depth.
	switch {
	case h1NumberRe.MatchString(el.Text):
		return model.LevelH1, true
	case h2NumberRe.MatchString(el.Text):
		return model.LevelH2, true
	case h3NumberRe.MatchString(el.Text):
		return model.LevelH3, true
	}

	return model.LevelUnknown, false
}
