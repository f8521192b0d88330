package model

import (
	"encoding/json"
	"fmt"
)

// UntitledTitle is the placeholder title for documents where no title could
// be resolved, including decode failures and empty documents.
const UntitledTitle = "Untitled Document"

// Level represents the classification of a heading candidate
type Level int

const (
	LevelUnknown Level = iota
	LevelTitle
	LevelH1
	LevelH2
	LevelH3
)

// String returns the wire name of the level
func (l Level) String() string {
	switch l {
	case LevelTitle:
		return "title"
	case LevelH1:
		return "H1"
	case LevelH2:
		return "H2"
	case LevelH3:
		return "H3"
	default:
		return "unknown"
	}
}

// Priority returns the sort priority within a page (H1 before H2 before H3)
func (l Level) Priority() int {
	switch l {
	case LevelH1:
		return 1
	case LevelH2:
		return 2
	case LevelH3:
		return 3
	default:
		return 4
	}
}

// MarshalJSON encodes the level as its wire name
func (l Level) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

// UnmarshalJSON decodes a wire-name level
func (l *Level) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "title":
		*l = LevelTitle
	case "H1":
		*l = LevelH1
	case "H2":
		*l = LevelH2
	case "H3":
		*l = LevelH3
	default:
		return fmt.Errorf("unknown heading level %q", s)
	}
	return nil
}

// ClassifiedHeading is an element that received a level from the classifier.
// It is an intermediate form consumed by the outline post-processor.
type ClassifiedHeading struct {
	Level      Level
	Text       string
	Page       int
	Confidence float64
	FontSize   float64
}

// OutlineEntry is one entry of the final outline. Title-level headings never
// appear here; the document title is surfaced separately.
type OutlineEntry struct {
	Level Level  `json:"level"`
	Text  string `json:"text"`
	Page  int    `json:"page"`
}

// DocumentStructure is the externally visible result for one document: the
// resolved title plus the ordered H1/H2/H3 outline. Field names are a fixed
// compatibility contract.
type DocumentStructure struct {
	Title   string         `json:"title"`
	Outline []OutlineEntry `json:"outline"`
}

// EmptyStructure returns the canonical result for a document that produced
// no usable elements. The outline is non-nil so it serializes as [].
func EmptyStructure() DocumentStructure {
	return DocumentStructure{
		Title:   UntitledTitle,
		Outline: []OutlineEntry{},
	}
}

// Result is the per-document outcome. Degraded marks documents where the
// decoding layer failed and the canonical empty structure was substituted,
// letting a batch driver distinguish decode failures from genuinely empty
// documents while both serialize to the same contract.
type Result struct {
	Structure DocumentStructure
	Degraded  bool
}
