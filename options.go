package structext

import "github.com/Rehan80221/adobe-structure-extractor/model"

// analyzeOptions holds configuration for structure inference.
type analyzeOptions struct {
	// maxPages bounds decoding; 0 means all pages
	maxPages int

	// Confidence floors; zero values defer to the layout defaults
	minConfidence   float64
	titleConfidence float64

	// minFontSize is the hierarchy noise cutoff in points
	minFontSize float64

	// thresholds are the positional cutoffs for layout scoring
	thresholds model.LayoutThresholds
}

// defaultOptions returns the default inference options.
func defaultOptions() analyzeOptions {
	return analyzeOptions{
		maxPages:   0, // all pages
		thresholds: model.DefaultLayoutThresholds(),
	}
}

// clone creates a copy of analyzeOptions.
func (o analyzeOptions) clone() analyzeOptions {
	return analyzeOptions{
		maxPages:        o.maxPages,
		minConfidence:   o.minConfidence,
		titleConfidence: o.titleConfidence,
		minFontSize:     o.minFontSize,
		thresholds:      o.thresholds,
	}
}
