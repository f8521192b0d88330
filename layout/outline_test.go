package layout

import (
	"strings"
	"testing"

	"github.com/Rehan80221/adobe-structure-extractor/model"
)

func TestBuildOutlineExcludesTitle(t *testing.T) {
	headings := []model.ClassifiedHeading{
		{Level: model.LevelTitle, Text: "Document Title", Page: 1, FontSize: 20},
		{Level: model.LevelH1, Text: "1. Introduction", Page: 1, FontSize: 16},
	}

	outline := BuildOutline(headings)
	if len(outline) != 1 {
		t.Fatalf("got %d entries, want 1", len(outline))
	}
	if outline[0].Level == model.LevelTitle {
		t.Error("outline contains a title-level entry")
	}
	if outline[0].Text != "Introduction" {
		t.Errorf("text = %q, want %q (numbering stripped)", outline[0].Text, "Introduction")
	}
}

func TestBuildOutlineDeduplicatesCaseInsensitively(t *testing.T) {
	headings := []model.ClassifiedHeading{
		{Level: model.LevelH2, Text: "1.1 Background", Page: 2},
		{Level: model.LevelH2, Text: "BACKGROUND", Page: 5},
	}

	outline := BuildOutline(headings)
	if len(outline) != 1 {
		t.Fatalf("got %d entries, want 1 after dedup", len(outline))
	}
	if outline[0].Page != 2 {
		t.Errorf("kept page %d, want first occurrence on page 2", outline[0].Page)
	}
}

func TestBuildOutlineDropsShortText(t *testing.T) {
	headings := []model.ClassifiedHeading{
		{Level: model.LevelH1, Text: "1. Ab", Page: 1}, // cleans to "Ab", too short
		{Level: model.LevelH1, Text: "2. Scope", Page: 1},
	}

	outline := BuildOutline(headings)
	if len(outline) != 1 || outline[0].Text != "Scope" {
		t.Errorf("outline = %+v, want single entry %q", outline, "Scope")
	}
}

func TestBuildOutlineSortsByPageThenLevel(t *testing.T) {
	headings := []model.ClassifiedHeading{
		{Level: model.LevelH3, Text: "Deep Detail", Page: 4},
		{Level: model.LevelH1, Text: "Second Chapter", Page: 4},
		{Level: model.LevelH2, Text: "Early Subsection", Page: 2},
	}

	outline := BuildOutline(headings)
	if len(outline) != 3 {
		t.Fatalf("got %d entries, want 3", len(outline))
	}

	wantOrder := []string{"Early Subsection", "Second Chapter", "Deep Detail"}
	for i, want := range wantOrder {
		if outline[i].Text != want {
			t.Errorf("position %d = %q, want %q", i, outline[i].Text, want)
		}
	}
}

func TestBuildOutlineIdempotent(t *testing.T) {
	headings := []model.ClassifiedHeading{
		{Level: model.LevelH1, Text: "1. Introduction", Page: 1},
		{Level: model.LevelH2, Text: "1.1 background", Page: 2},
		{Level: model.LevelH1, Text: "2. METHODS", Page: 3},
	}

	once := BuildOutline(headings)

	// Feed the processed outline back through as classified headings.
	again := make([]model.ClassifiedHeading, 0, len(once))
	for _, e := range once {
		again = append(again, model.ClassifiedHeading{Level: e.Level, Text: e.Text, Page: e.Page})
	}
	twice := BuildOutline(again)

	if len(once) != len(twice) {
		t.Fatalf("entry count changed: %d then %d", len(once), len(twice))
	}
	for i := range once {
		if once[i] != twice[i] {
			t.Errorf("entry %d changed: %+v then %+v", i, once[i], twice[i])
		}
	}
}

func TestBuildOutlineEmpty(t *testing.T) {
	if outline := BuildOutline(nil); len(outline) != 0 {
		t.Errorf("BuildOutline(nil) = %+v, want empty", outline)
	}
}

func TestRenderIndentedTOC(t *testing.T) {
	outline := []model.OutlineEntry{
		{Level: model.LevelH1, Text: "Introduction", Page: 1},
		{Level: model.LevelH2, Text: "Background", Page: 2},
		{Level: model.LevelH3, Text: "History", Page: 2},
	}

	got := RenderIndentedTOC(outline)
	want := "Introduction\n  Background\n    History\n"
	if got != want {
		t.Errorf("RenderIndentedTOC = %q, want %q", got, want)
	}
}

func TestRenderMarkdownTOC(t *testing.T) {
	outline := []model.OutlineEntry{
		{Level: model.LevelH1, Text: "Introduction", Page: 1},
		{Level: model.LevelH2, Text: "Background", Page: 2},
	}

	got := RenderMarkdownTOC(outline)
	if !strings.Contains(got, "- Introduction\n") || !strings.Contains(got, "  - Background\n") {
		t.Errorf("RenderMarkdownTOC = %q, missing expected list items", got)
	}
}
