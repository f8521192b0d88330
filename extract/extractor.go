package extract

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/Rehan80221/adobe-structure-extractor/model"
	"github.com/Rehan80221/adobe-structure-extractor/text"
)

// Decoding defaults. Distances are in points unless noted.
const (
	// DefaultRowTolerance is the vertical distance within which glyph runs
	// belong to the same visual row.
	DefaultRowTolerance = 3.0

	// DefaultWordSpaceFraction is the fraction of the font size treated as
	// a single word space when merging runs into spans.
	DefaultWordSpaceFraction = 0.3

	// spanBreakFactor scales the word space up to the gap at which a row
	// splits into separate spans.
	spanBreakFactor = 3.0

	// US-Letter fallback for pages without a usable MediaBox.
	defaultPageWidth  = 612.0
	defaultPageHeight = 792.0
)

// Extractor decodes PDF pages into model.TextElement streams. The zero value
// is not usable; construct with NewExtractor and adjust fields before the
// first extraction.
type Extractor struct {
	// RowTolerance groups glyph runs into rows by baseline Y distance
	RowTolerance float64

	// WordSpaceFraction controls run-into-span merging; see the package
	// defaults.
	WordSpaceFraction float64

	// MaxPages bounds how many pages are decoded; 0 decodes all
	MaxPages int

	// Thresholds are the layout cutoffs handed to produced elements,
	// rescaled per page to its actual width.
	Thresholds model.LayoutThresholds
}

// NewExtractor creates an extractor with the default decoding parameters
func NewExtractor() *Extractor {
	return &Extractor{
		RowTolerance:      DefaultRowTolerance,
		WordSpaceFraction: DefaultWordSpaceFraction,
		Thresholds:        model.DefaultLayoutThresholds(),
	}
}

// ExtractFile decodes the PDF at path into per-page element slices. Page
// indices in the result are zero-based; element page numbers are one-based.
func (e *Extractor) ExtractFile(path string) ([][]model.TextElement, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf %s: %w", path, err)
	}
	defer f.Close()

	return e.extract(r)
}

// ExtractReader decodes a PDF from an already open reader of known size
func (e *Extractor) ExtractReader(r io.ReaderAt, size int64) ([][]model.TextElement, error) {
	reader, err := pdf.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("read pdf: %w", err)
	}
	return e.extract(reader)
}

func (e *Extractor) extract(r *pdf.Reader) ([][]model.TextElement, error) {
	total := r.NumPage()
	if total == 0 {
		return nil, ErrNoPages
	}
	if e.MaxPages > 0 && total > e.MaxPages {
		total = e.MaxPages
	}

	pages := make([][]model.TextElement, 0, total)
	for num := 1; num <= total; num++ {
		page := r.Page(num)
		if page.V.IsNull() {
			pages = append(pages, nil)
			continue
		}
		pages = append(pages, e.extractPage(page, num))
	}
	return pages, nil
}

// extractPage decodes one page. The underlying decoder panics on malformed
// content streams, so a broken page yields no elements instead of aborting
// the whole document.
func (e *Extractor) extractPage(page pdf.Page, number int) (elements []model.TextElement) {
	defer func() {
		if recover() != nil {
			elements = nil
		}
	}()

	width, height := pageSize(page)
	thresholds := e.Thresholds.ScaleToPageWidth(width)

	content := page.Content()
	runs := make([]pdf.Text, 0, len(content.Text))
	for _, t := range content.Text {
		if strings.TrimSpace(t.S) == "" {
			continue
		}
		runs = append(runs, t)
	}
	if len(runs) == 0 {
		return nil
	}

	for _, row := range e.groupRows(runs) {
		for _, s := range e.mergeSpans(row) {
			if el, ok := e.buildElement(s, number, height, thresholds); ok {
				elements = append(elements, el)
			}
		}
	}
	return elements
}

// groupRows buckets glyph runs into visual rows, top of page first. PDF Y
// coordinates grow upward, so rows are ordered by descending baseline.
func (e *Extractor) groupRows(runs []pdf.Text) [][]pdf.Text {
	sort.SliceStable(runs, func(i, j int) bool { return runs[i].Y > runs[j].Y })

	var rows [][]pdf.Text
	for _, t := range runs {
		if n := len(rows); n > 0 && math.Abs(rows[n-1][0].Y-t.Y) <= e.RowTolerance {
			rows[n-1] = append(rows[n-1], t)
			continue
		}
		rows = append(rows, []pdf.Text{t})
	}

	for _, row := range rows {
		sort.SliceStable(row, func(i, j int) bool { return row[i].X < row[j].X })
	}
	return rows
}

// span is a merged run of glyphs sharing font and size on one row. The Y
// coordinate is still the PDF bottom-up baseline.
type span struct {
	text string
	font string
	size float64
	x0   float64
	x1   float64
	y    float64
}

// mergeSpans joins a row's runs left to right: runs of the same font and
// size merge directly when the gap is within a word space, merge with an
// inserted space when within spanBreakFactor word spaces, and start a new
// span otherwise.
func (e *Extractor) mergeSpans(row []pdf.Text) []span {
	var spans []span
	for _, t := range row {
		size := roundSize(t.FontSize)

		if n := len(spans); n > 0 {
			cur := &spans[n-1]
			gap := t.X - cur.x1
			space := e.wordSpace(size)

			if cur.font == t.Font && cur.size == size && gap <= spanBreakFactor*space {
				if gap > space {
					cur.text += " "
				}
				cur.text += t.S
				cur.x1 = t.X + t.W
				continue
			}
		}

		spans = append(spans, span{
			text: t.S,
			font: t.Font,
			size: size,
			x0:   t.X,
			x1:   t.X + t.W,
			y:    t.Y,
		})
	}
	return spans
}

// buildElement converts a span into a model element: normalize the text,
// drop noise, flip the Y axis to top-down, and derive layout properties.
func (e *Extractor) buildElement(s span, page int, pageHeight float64, th model.LayoutThresholds) (model.TextElement, bool) {
	normalized := text.Normalize(s.text)
	if normalized == "" || text.IsNoise(normalized) {
		return model.TextElement{}, false
	}

	top := pageHeight - s.y - s.size
	if top < 0 {
		top = 0
	}
	bbox := model.NewBBox(s.x0, top, s.x1, pageHeight-s.y)

	lang := text.DetectLanguageType(normalized)
	el := model.NewTextElement(
		normalized, s.font, s.size,
		IsBoldFont(s.font), IsItalicFont(s.font),
		bbox, page, lang, th,
	)
	return el, true
}

// wordSpace returns the merge gap for a font size, floored at 1pt so tiny
// fonts still merge.
func (e *Extractor) wordSpace(size float64) float64 {
	ws := e.WordSpaceFraction * size
	if ws < 1 {
		return 1
	}
	return ws
}

// roundSize rounds a font size to 0.1pt, matching the hierarchy clustering
func roundSize(size float64) float64 {
	return math.Round(size*10) / 10
}

// pageSize reads the MediaBox dimensions, falling back to US-Letter when the
// box is missing or degenerate.
func pageSize(page pdf.Page) (width, height float64) {
	width, height = defaultPageWidth, defaultPageHeight

	box := page.V.Key("MediaBox")
	if box.Len() == 4 {
		w := box.Index(2).Float64() - box.Index(0).Float64()
		h := box.Index(3).Float64() - box.Index(1).Float64()
		if w > 0 && h > 0 {
			width, height = w, h
		}
	}
	return width, height
}
