package layout

import (
	"math"
	"sort"

	"github.com/Rehan80221/adobe-structure-extractor/model"
)

// Importance weighting for ranking font sizes: larger sizes dominate, but
// frequent sizes get a boost so a rarely-used decorative size does not
// outrank the real heading sizes.
const (
	sizeWeight      = 0.7
	frequencyWeight = 0.3
)

// MinFontSize is the default cutoff below which spans are treated as noise
// when building the hierarchy.
const MinFontSize = 8.0

// FontHierarchy maps the heading levels of one document to representative
// font sizes. It is built once per document and passed explicitly to the
// scorer and classifier; the zero value means no hierarchy could be derived
// and the level accessors fall back to conventional print sizes.
type FontHierarchy struct {
	Title float64
	H1    float64
	H2    float64
	H3    float64
}

// Valid reports whether the hierarchy was derived from actual document data
func (h FontHierarchy) Valid() bool {
	return h.Title > 0
}

// TitleSize returns the title font size, defaulting to 16pt
func (h FontHierarchy) TitleSize() float64 {
	if h.Title > 0 {
		return h.Title
	}
	return 16
}

// H1Size returns the H1 font size, defaulting to 14pt
func (h FontHierarchy) H1Size() float64 {
	if h.H1 > 0 {
		return h.H1
	}
	return 14
}

// H2Size returns the H2 font size, defaulting to 12pt
func (h FontHierarchy) H2Size() float64 {
	if h.H2 > 0 {
		return h.H2
	}
	return 12
}

// H3Size returns the H3 font size, defaulting to 10pt
func (h FontHierarchy) H3Size() float64 {
	if h.H3 > 0 {
		return h.H3
	}
	return 10
}

// FallbackHierarchy returns the fixed hierarchy used when no element meets
// the minimum font size.
func FallbackHierarchy() FontHierarchy {
	return FontHierarchy{Title: 16, H1: 14, H2: 12, H3: 10}
}

// sizeCluster aggregates the spans sharing one font size (0.1pt precision)
type sizeCluster struct {
	size       float64
	count      int
	earlyCount int // occurrences on pages 1-2
	importance float64
}

// AnalyzeFontHierarchy derives the document's font hierarchy from the
// distribution of span sizes. Spans below minFontSize are ignored as noise;
// if nothing qualifies the fixed fallback hierarchy is returned.
//
// Distinct sizes are ranked by a weighted importance of relative size and
// frequency. The title size is elected among the three highest-ranked sizes
// as the one appearing most often on the first two pages; the next three
// ranked sizes become H1, H2, H3. When fewer than three sizes remain, the
// missing levels are synthesized by subtracting 1-2pt. The decrements are a
// heuristic carried over for behavioral compatibility, not a derived value.
func AnalyzeFontHierarchy(pages [][]model.TextElement, minFontSize float64) FontHierarchy {
	if minFontSize <= 0 {
		minFontSize = MinFontSize
	}

	byKey := make(map[int]*sizeCluster)
	total := 0
	maxSize := 0.0

	for _, page := range pages {
		for _, el := range page {
			size := roundSize(el.FontSize)
			if size < minFontSize {
				continue
			}
			key := sizeKey(size)
			cluster := byKey[key]
			if cluster == nil {
				cluster = &sizeCluster{size: size}
				byKey[key] = cluster
			}
			cluster.count++
			if el.Page <= 2 {
				cluster.earlyCount++
			}
			total++
			if size > maxSize {
				maxSize = size
			}
		}
	}

	if total == 0 {
		return FallbackHierarchy()
	}

	clusters := make([]sizeCluster, 0, len(byKey))
	for _, c := range byKey {
		c.importance = sizeWeight*(c.size/maxSize) +
			frequencyWeight*(float64(c.count)/float64(total))
		clusters = append(clusters, *c)
	}

	// Rank by importance; break exact ties by size so the order is stable
	// across runs regardless of map iteration.
	sort.Slice(clusters, func(i, j int) bool {
		if clusters[i].importance != clusters[j].importance {
			return clusters[i].importance > clusters[j].importance
		}
		return clusters[i].size > clusters[j].size
	})

	var h FontHierarchy
	h.Title = electTitleSize(clusters)

	remaining := make([]float64, 0, len(clusters))
	for _, c := range clusters {
		if c.size != h.Title {
			remaining = append(remaining, c.size)
		}
	}

	switch {
	case len(remaining) >= 3:
		h.H1, h.H2, h.H3 = remaining[0], remaining[1], remaining[2]
	case len(remaining) == 2:
		h.H1, h.H2 = remaining[0], remaining[1]
		h.H3 = remaining[1] - 1
	case len(remaining) == 1:
		h.H1 = remaining[0]
		h.H2 = remaining[0] - 1
		h.H3 = remaining[0] - 2
	default:
		h.H1 = h.Title - 2
		h.H2 = h.H1 - 1
		h.H3 = h.H1 - 2
	}

	return h
}

// electTitleSize picks the title size among the three highest-ranked
// clusters: the one with the most occurrences on pages 1-2, or the single
// highest-ranked size when none of them appears that early.
func electTitleSize(clusters []sizeCluster) float64 {
	top := clusters
	if len(top) > 3 {
		top = top[:3]
	}

	best := -1
	bestSize := 0.0
	for _, c := range top {
		if c.earlyCount > 0 && c.earlyCount > best {
			best = c.earlyCount
			bestSize = c.size
		}
	}
	if best > 0 {
		return bestSize
	}
	return clusters[0].size
}

// roundSize rounds a font size to 0.1pt precision
func roundSize(size float64) float64 {
	return math.Round(size*10) / 10
}

// sizeKey buckets a rounded size for map lookup
func sizeKey(size float64) int {
	return int(math.Round(size * 10))
}
