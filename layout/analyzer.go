package layout

import (
	"github.com/Rehan80221/adobe-structure-extractor/model"
)

// Config holds the tunable thresholds of a StructureAnalyzer
type Config struct {
	// MinConfidence is the candidate-selection floor (default 0.4)
	MinConfidence float64

	// TitleConfidence is the title-classification floor (default 0.6)
	TitleConfidence float64

	// MinFontSize is the hierarchy noise cutoff in points (default 8.0)
	MinFontSize float64

	// Thresholds are the positional cutoffs for alignment and top-of-page
	// scoring.
	Thresholds model.LayoutThresholds
}

// DefaultConfig returns the standard analyzer configuration
func DefaultConfig() Config {
	return Config{
		MinConfidence:   DefaultMinConfidence,
		TitleConfidence: DefaultTitleConfidence,
		MinFontSize:     MinFontSize,
		Thresholds:      model.DefaultLayoutThresholds(),
	}
}

// StructureAnalyzer infers a document's semantic structure from its
// page-ordered text elements. Analyzing a document is a pure function of
// the element stream; the analyzer holds only configuration and may be
// shared across concurrent per-document analyses.
type StructureAnalyzer struct {
	config     Config
	scorer     *Scorer
	classifier *Classifier
}

// NewStructureAnalyzer creates an analyzer with the default configuration
func NewStructureAnalyzer() *StructureAnalyzer {
	return NewStructureAnalyzerWithConfig(DefaultConfig())
}

// NewStructureAnalyzerWithConfig creates an analyzer with a custom
// configuration. Zero fields fall back to their defaults.
func NewStructureAnalyzerWithConfig(config Config) *StructureAnalyzer {
	if config.MinConfidence <= 0 {
		config.MinConfidence = DefaultMinConfidence
	}
	if config.TitleConfidence <= 0 {
		config.TitleConfidence = DefaultTitleConfidence
	}
	if config.MinFontSize <= 0 {
		config.MinFontSize = MinFontSize
	}
	if config.Thresholds == (model.LayoutThresholds{}) {
		config.Thresholds = model.DefaultLayoutThresholds()
	}

	scorer := NewScorer(config.Thresholds)
	return &StructureAnalyzer{
		config:     config,
		scorer:     scorer,
		classifier: NewClassifierWithThresholds(scorer, config.MinConfidence, config.TitleConfidence),
	}
}

// Config returns the analyzer's effective configuration
func (a *StructureAnalyzer) Config() Config {
	return a.config
}

// Analyze runs the full inference pipeline over a document's pages: font
// hierarchy discovery, confidence scoring and classification, outline
// post-processing, and the independent title pass. An empty element stream
// yields the canonical empty structure; Analyze never fails.
func (a *StructureAnalyzer) Analyze(pages [][]model.TextElement) model.DocumentStructure {
	if !hasElements(pages) {
		return model.EmptyStructure()
	}

	hierarchy := AnalyzeFontHierarchy(pages, a.config.MinFontSize)
	classified := a.classifier.Classify(pages, hierarchy)
	outline := BuildOutline(classified)
	title := ResolveTitle(pages, hierarchy, a.scorer, a.config.TitleConfidence)

	return model.DocumentStructure{
		Title:   title,
		Outline: outline,
	}
}

// Score exposes the analyzer's scorer for a single element under an
// explicit hierarchy. Useful for diagnostics and tests.
func (a *StructureAnalyzer) Score(el model.TextElement, h FontHierarchy) float64 {
	return a.scorer.Score(el, h)
}

// hasElements reports whether any page carries at least one element
func hasElements(pages [][]model.TextElement) bool {
	for _, page := range pages {
		if len(page) > 0 {
			return true
		}
	}
	return false
}
