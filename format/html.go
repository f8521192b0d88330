package format

import (
	"fmt"
	"html"
	"strings"

	"github.com/Rehan80221/adobe-structure-extractor/model"
)

// RenderHTMLNav renders the structure as an HTML navigation fragment: the
// title as <h1> inside <nav>, and the outline as <ol> lists nested by
// heading level. Entries carry their page number in a data attribute.
func RenderHTMLNav(structure model.DocumentStructure) string {
	var sb strings.Builder
	sb.WriteString("<nav>\n")
	sb.WriteString("<h1>")
	sb.WriteString(html.EscapeString(structure.Title))
	sb.WriteString("</h1>\n")

	depth := 0
	for _, entry := range structure.Outline {
		level := entry.Level.Priority()
		for depth < level {
			sb.WriteString(strings.Repeat("  ", depth))
			sb.WriteString("<ol>\n")
			depth++
		}
		for depth > level {
			depth--
			sb.WriteString(strings.Repeat("  ", depth))
			sb.WriteString("</ol>\n")
		}
		sb.WriteString(strings.Repeat("  ", depth))
		fmt.Fprintf(&sb, "<li data-page=\"%d\">%s</li>\n", entry.Page, html.EscapeString(entry.Text))
	}
	for depth > 0 {
		depth--
		sb.WriteString(strings.Repeat("  ", depth))
		sb.WriteString("</ol>\n")
	}

	sb.WriteString("</nav>\n")
	return sb.String()
}
