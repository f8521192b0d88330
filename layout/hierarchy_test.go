package layout

import (
	"testing"

	"github.com/Rehan80221/adobe-structure-extractor/model"
)

// makeElement creates a text element for analysis tests
func makeElement(t string, size float64, bold bool, x, y float64, page int) model.TextElement {
	return model.NewTextElement(
		t, "Helvetica", size, bold, false,
		model.NewBBox(x, y, x+200, y+size),
		page, model.LanguageLatin, model.DefaultLayoutThresholds(),
	)
}

// repeatElements creates n copies of an element spread over pages
func repeatElements(text string, size float64, n, startPage int) []model.TextElement {
	els := make([]model.TextElement, 0, n)
	for i := 0; i < n; i++ {
		els = append(els, makeElement(text, size, false, 72, 300, startPage+i))
	}
	return els
}

func TestAnalyzeFontHierarchyEmpty(t *testing.T) {
	h := AnalyzeFontHierarchy(nil, MinFontSize)
	if h != FallbackHierarchy() {
		t.Errorf("empty input hierarchy = %+v, want fallback", h)
	}
}

func TestAnalyzeFontHierarchyAllBelowThreshold(t *testing.T) {
	pages := [][]model.TextElement{
		{makeElement("tiny footnote text", 6, false, 72, 700, 1)},
		{makeElement("more tiny text", 7.5, false, 72, 700, 2)},
	}
	h := AnalyzeFontHierarchy(pages, MinFontSize)
	if h != FallbackHierarchy() {
		t.Errorf("below-threshold hierarchy = %+v, want fallback {16 14 12 10}", h)
	}
}

func TestAnalyzeFontHierarchyFourSizes(t *testing.T) {
	// Ranked by importance: 24 > 18 > 14 > 11. Only the 24pt span appears
	// on the first two pages, so it is elected title.
	pages := [][]model.TextElement{
		{makeElement("Document Title", 24, true, 72, 60, 1)},
		append(repeatElements("Section Heading", 18, 2, 3),
			repeatElements("Subsection", 14, 4, 3)...),
		repeatElements("Body paragraph text", 11, 6, 3),
	}

	h := AnalyzeFontHierarchy(pages, MinFontSize)
	want := FontHierarchy{Title: 24, H1: 18, H2: 14, H3: 11}
	if h != want {
		t.Errorf("hierarchy = %+v, want %+v", h, want)
	}
}

func TestAnalyzeFontHierarchySynthesisTwoRemaining(t *testing.T) {
	// Later-page sizes keep the early-page title election unambiguous.
	pages := [][]model.TextElement{
		{makeElement("Title Span", 20, true, 72, 60, 1)},
		{
			makeElement("Heading One", 16, false, 72, 100, 3),
			makeElement("Some body text here", 12, false, 72, 300, 3),
			makeElement("More body text here", 12, false, 72, 340, 3),
		},
	}

	h := AnalyzeFontHierarchy(pages, MinFontSize)
	want := FontHierarchy{Title: 20, H1: 16, H2: 12, H3: 11}
	if h != want {
		t.Errorf("hierarchy = %+v, want %+v (H3 synthesized as H2-1)", h, want)
	}
}

func TestAnalyzeFontHierarchySynthesisOneRemaining(t *testing.T) {
	// Single non-title size S: H1=S, H2=S-1, H3=S-2.
	pages := [][]model.TextElement{
		{makeElement("Title Span", 20, true, 72, 60, 1)},
		repeatElements("Body text content", 12, 3, 2),
	}

	h := AnalyzeFontHierarchy(pages, MinFontSize)
	want := FontHierarchy{Title: 20, H1: 12, H2: 11, H3: 10}
	if h != want {
		t.Errorf("hierarchy = %+v, want %+v", h, want)
	}
}

func TestAnalyzeFontHierarchySynthesisZeroRemaining(t *testing.T) {
	// One distinct size in the whole document: everything derives from it.
	pages := [][]model.TextElement{
		repeatElements("Uniform text", 14, 5, 1),
	}

	h := AnalyzeFontHierarchy(pages, MinFontSize)
	want := FontHierarchy{Title: 14, H1: 12, H2: 11, H3: 10}
	if h != want {
		t.Errorf("hierarchy = %+v, want %+v", h, want)
	}
}

func TestAnalyzeFontHierarchyTitleElectionNoEarlyPages(t *testing.T) {
	// No top-ranked size appears on pages 1-2 (pages start at 3 here), so
	// the single highest-ranked size becomes the title.
	pages := [][]model.TextElement{
		repeatElements("Late Heading", 20, 1, 3),
		repeatElements("Late body text", 12, 4, 4),
	}

	h := AnalyzeFontHierarchy(pages, MinFontSize)
	if h.Title != 20 {
		t.Errorf("Title = %f, want highest-ranked 20", h.Title)
	}
}

func TestAnalyzeFontHierarchyRoundsSizes(t *testing.T) {
	pages := [][]model.TextElement{
		{
			makeElement("Heading A", 14.04, false, 72, 60, 1),
			makeElement("Heading B", 13.96, false, 72, 100, 1),
		},
	}

	// 14.04 rounds to 14.0, 13.96 rounds to 14.0: one distinct size.
	h := AnalyzeFontHierarchy(pages, MinFontSize)
	want := FontHierarchy{Title: 14, H1: 12, H2: 11, H3: 10}
	if h != want {
		t.Errorf("hierarchy = %+v, want %+v", h, want)
	}
}

func TestFontHierarchyDefaults(t *testing.T) {
	var zero FontHierarchy
	if zero.Valid() {
		t.Error("zero hierarchy should not be valid")
	}
	if zero.TitleSize() != 16 || zero.H1Size() != 14 || zero.H2Size() != 12 || zero.H3Size() != 10 {
		t.Errorf("zero hierarchy accessors = %f/%f/%f/%f, want 16/14/12/10",
			zero.TitleSize(), zero.H1Size(), zero.H2Size(), zero.H3Size())
	}

	derived := FontHierarchy{Title: 22, H1: 17, H2: 13, H3: 9}
	if !derived.Valid() {
		t.Error("derived hierarchy should be valid")
	}
	if derived.H2Size() != 13 {
		t.Errorf("H2Size() = %f, want 13", derived.H2Size())
	}
}
