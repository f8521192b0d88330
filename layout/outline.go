package layout

import (
	"sort"
	"strings"

	"github.com/Rehan80221/adobe-structure-extractor/model"
	"github.com/Rehan80221/adobe-structure-extractor/text"
)

// minCleanedLength is the shortest cleaned text kept in the outline;
// anything at or below it is too generic to be a useful entry.
const minCleanedLength = 2

// BuildOutline turns classified headings into the final outline: title-level
// entries are excluded (the title is surfaced separately), text is cleaned,
// entries whose cleaned text is too short are dropped, duplicates are
// removed case-insensitively keeping the first occurrence in classification
// order, and the survivors are sorted by (page, level priority).
//
// Running BuildOutline on headings built from its own output is a no-op.
func BuildOutline(headings []model.ClassifiedHeading) []model.OutlineEntry {
	outline := make([]model.OutlineEntry, 0, len(headings))
	seen := make(map[string]bool)

	for _, h := range headings {
		if h.Level == model.LevelTitle {
			continue
		}

		cleaned := text.CleanHeading(h.Text)
		if len([]rune(cleaned)) <= minCleanedLength {
			continue
		}

		key := strings.ToLower(cleaned)
		if seen[key] {
			continue
		}
		seen[key] = true

		outline = append(outline, model.OutlineEntry{
			Level: h.Level,
			Text:  cleaned,
			Page:  h.Page,
		})
	}

	sort.SliceStable(outline, func(i, j int) bool {
		if outline[i].Page != outline[j].Page {
			return outline[i].Page < outline[j].Page
		}
		return outline[i].Level.Priority() < outline[j].Level.Priority()
	})

	return outline
}

// RenderIndentedTOC returns a plain-text table of contents with two spaces
// of indentation per level.
func RenderIndentedTOC(outline []model.OutlineEntry) string {
	var sb strings.Builder
	for _, entry := range outline {
		sb.WriteString(strings.Repeat("  ", entry.Level.Priority()-1))
		sb.WriteString(entry.Text)
		sb.WriteString("\n")
	}
	return sb.String()
}

// RenderMarkdownTOC returns a markdown list table of contents
func RenderMarkdownTOC(outline []model.OutlineEntry) string {
	var sb strings.Builder
	for _, entry := range outline {
		sb.WriteString(strings.Repeat("  ", entry.Level.Priority()-1))
		sb.WriteString("- ")
		sb.WriteString(entry.Text)
		sb.WriteString("\n")
	}
	return sb.String()
}
