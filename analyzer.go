package structext

import (
	"fmt"
	"io"

	"github.com/Rehan80221/adobe-structure-extractor/extract"
	"github.com/Rehan80221/adobe-structure-extractor/format"
	"github.com/Rehan80221/adobe-structure-extractor/layout"
	"github.com/Rehan80221/adobe-structure-extractor/model"
)

// Analyzer provides a fluent interface for inferring document structure.
// Each configuration method returns a new Analyzer instance, making chains
// safe to fork and reuse concurrently.
type Analyzer struct {
	// Source: either a filename or an open reader
	filename   string
	reader     io.ReaderAt
	readerSize int64

	// Configuration
	options analyzeOptions
}

// clone creates a copy of the Analyzer with its own options. Chain methods
// mutate only the copy.
func (a *Analyzer) clone() *Analyzer {
	return &Analyzer{
		filename:   a.filename,
		reader:     a.reader,
		readerSize: a.readerSize,
		options:    a.options.clone(),
	}
}

// ============================================================================
// Configuration methods (return new Analyzer instance)
// ============================================================================

// MaxPages bounds how many pages are decoded and analyzed. Zero or negative
// restores the default of all pages.
//
// Example:
//
//	structure, err := structext.Open("book.pdf").MaxPages(50).Structure()
func (a *Analyzer) MaxPages(n int) *Analyzer {
	next := a.clone()
	if n < 0 {
		n = 0
	}
	next.options.maxPages = n
	return next
}

// MinConfidence sets the candidate-selection floor for heading detection.
// Values outside (0, 1] defer to the default.
func (a *Analyzer) MinConfidence(v float64) *Analyzer {
	next := a.clone()
	next.options.minConfidence = v
	return next
}

// TitleConfidence sets the confidence floor for title classification.
// Values outside (0, 1] defer to the default.
func (a *Analyzer) TitleConfidence(v float64) *Analyzer {
	next := a.clone()
	next.options.titleConfidence = v
	return next
}

// MinFontSize sets the smallest font size considered during hierarchy
// discovery. Non-positive values defer to the default.
func (a *Analyzer) MinFontSize(v float64) *Analyzer {
	next := a.clone()
	next.options.minFontSize = v
	return next
}

// Thresholds replaces the positional layout cutoffs. The zero value defers
// to the defaults.
func (a *Analyzer) Thresholds(t model.LayoutThresholds) *Analyzer {
	next := a.clone()
	next.options.thresholds = t
	return next
}

// ============================================================================
// Terminal methods
// ============================================================================

// Structure runs extraction and analysis and returns the inferred document
// structure. Decode failures surface as errors; documents that decode but
// contain no text yield the empty structure.
func (a *Analyzer) Structure() (model.DocumentStructure, error) {
	pages, err := a.extractPages()
	if err != nil {
		return model.DocumentStructure{}, err
	}
	return a.layoutAnalyzer().Analyze(pages), nil
}

// Result is the never-failing variant of Structure: decode failures degrade
// to the empty structure with the Degraded flag set.
func (a *Analyzer) Result() model.Result {
	structure, err := a.Structure()
	if err != nil {
		return model.Result{Structure: model.EmptyStructure(), Degraded: true}
	}
	return model.Result{Structure: structure}
}

// JSON returns the inferred structure serialized per the output contract
func (a *Analyzer) JSON() ([]byte, error) {
	structure, err := a.Structure()
	if err != nil {
		return nil, err
	}
	return format.Marshal(structure)
}

// PageCount returns the document's page count without decoding content.
// Only available for filename-based analyzers.
func (a *Analyzer) PageCount() (int, error) {
	if a.filename == "" {
		return 0, fmt.Errorf("page count requires a filename source")
	}
	return extract.PageCount(a.filename)
}

// ============================================================================
// Internals
// ============================================================================

func (a *Analyzer) extractPages() ([][]model.TextElement, error) {
	ex := extract.NewExtractor()
	ex.MaxPages = a.options.maxPages
	ex.Thresholds = a.options.thresholds

	if a.reader != nil {
		return ex.ExtractReader(a.reader, a.readerSize)
	}
	if a.filename == "" {
		return nil, fmt.Errorf("no input specified")
	}
	return ex.ExtractFile(a.filename)
}

func (a *Analyzer) layoutAnalyzer() *layout.StructureAnalyzer {
	return layout.NewStructureAnalyzerWithConfig(layout.Config{
		MinConfidence:   a.options.minConfidence,
		TitleConfidence: a.options.titleConfidence,
		MinFontSize:     a.options.minFontSize,
		Thresholds:      a.options.thresholds,
	})
}
