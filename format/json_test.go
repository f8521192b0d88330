package format

import (
	"strings"
	"testing"

	"github.com/Rehan80221/adobe-structure-extractor/model"
)

func sampleStructure() model.DocumentStructure {
	return model.DocumentStructure{
		Title: "Annual Report 2025",
		Outline: []model.OutlineEntry{
			{Level: model.LevelH1, Text: "Introduction", Page: 1},
			{Level: model.LevelH2, Text: "Background", Page: 2},
			{Level: model.LevelH1, Text: "Methods", Page: 3},
		},
	}
}

func TestMarshalStructure(t *testing.T) {
	data, err := Marshal(sampleStructure())
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	got := string(data)
	want := `{
  "title": "Annual Report 2025",
  "outline": [
    {
      "level": "H1",
      "text": "Introduction",
      "page": 1
    },
    {
      "level": "H2",
      "text": "Background",
      "page": 2
    },
    {
      "level": "H1",
      "text": "Methods",
      "page": 3
    }
  ]
}
`
	if got != want {
		t.Errorf("Marshal output:\n%s\nwant:\n%s", got, want)
	}
}

func TestMarshalEmptyStructure(t *testing.T) {
	data, err := Marshal(model.EmptyStructure())
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	got := string(data)
	if !strings.Contains(got, `"title": "Untitled Document"`) {
		t.Errorf("missing placeholder title in %s", got)
	}
	if !strings.Contains(got, `"outline": []`) {
		t.Errorf("empty outline not serialized as []: %s", got)
	}
}

func TestMarshalDoesNotEscapeHTML(t *testing.T) {
	s := model.DocumentStructure{
		Title:   "R&D <Quarterly>",
		Outline: []model.OutlineEntry{},
	}

	data, err := Marshal(s)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !strings.Contains(string(data), "R&D <Quarterly>") {
		t.Errorf("title was HTML-escaped: %s", data)
	}
}

func TestValidateJSON(t *testing.T) {
	data, err := Marshal(sampleStructure())
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if err := ValidateJSON(data); err != nil {
		t.Errorf("valid output rejected: %v", err)
	}

	empty, err := Marshal(model.EmptyStructure())
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if err := ValidateJSON(empty); err != nil {
		t.Errorf("empty structure rejected: %v", err)
	}
}

func TestValidateJSONRejectsBadOutput(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", "{"},
		{"missing title", `{"outline": []}`},
		{"missing outline", `{"title": "Doc"}`},
		{"bad level", `{"title": "Doc", "outline": [{"level": "H4", "text": "X Y", "page": 1}]}`},
		{"title level leaked", `{"title": "Doc", "outline": [{"level": "title", "text": "X Y", "page": 1}]}`},
		{"zero page", `{"title": "Doc", "outline": [{"level": "H1", "text": "X Y", "page": 0}]}`},
		{"empty text", `{"title": "Doc", "outline": [{"level": "H1", "text": "", "page": 1}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidateJSON([]byte(tt.data)); err == nil {
				t.Error("invalid output accepted")
			}
		})
	}
}
