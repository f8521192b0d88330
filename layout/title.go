package layout

import (
	"sort"

	"github.com/Rehan80221/adobe-structure-extractor/model"
	"github.com/Rehan80221/adobe-structure-extractor/text"
)

// titleCandidate pairs a first-pages element with its confidence
type titleCandidate struct {
	element    model.TextElement
	confidence float64
}

// ResolveTitle performs the best-effort title pass, independent of the
// outline pipeline. It scans only the first two pages, collects elements
// with confidence at or above titleConfidence whose size is within 2pt of
// the title threshold, and returns the cleaned text of the best candidate
// by (confidence, then font size). When nothing qualifies it falls back to
// the largest span on page 1; a document with no elements at all resolves
// to the placeholder title.
func ResolveTitle(pages [][]model.TextElement, h FontHierarchy, scorer *Scorer, titleConfidence float64) string {
	if titleConfidence <= 0 {
		titleConfidence = DefaultTitleConfidence
	}
	if len(pages) == 0 {
		return model.UntitledTitle
	}

	var candidates []titleCandidate
	for _, page := range pages[:minInt(2, len(pages))] {
		for _, el := range page {
			confidence := scorer.Score(el, h)
			if confidence >= titleConfidence && el.FontSize >= h.TitleSize()-2 {
				candidates = append(candidates, titleCandidate{element: el, confidence: confidence})
			}
		}
	}

	if len(candidates) > 0 {
		sort.SliceStable(candidates, func(i, j int) bool {
			if candidates[i].confidence != candidates[j].confidence {
				return candidates[i].confidence > candidates[j].confidence
			}
			return candidates[i].element.FontSize > candidates[j].element.FontSize
		})
		return text.CleanHeading(candidates[0].element.Text)
	}

	// Fallback: largest span on the first page.
	if len(pages[0]) > 0 {
		largest := pages[0][0]
		for _, el := range pages[0][1:] {
			if el.FontSize > largest.FontSize {
				largest = el
			}
		}
		return text.CleanHeading(largest.Text)
	}

	return model.UntitledTitle
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
