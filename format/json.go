package format

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/Rehan80221/adobe-structure-extractor/model"
)

//go:embed schema.json
var schemaJSON string

var structureSchema = jsonschema.MustCompileString("structure.schema.json", schemaJSON)

// EncodeJSON writes the structure to w as 2-space indented UTF-8 JSON.
// HTML escaping is disabled so titles and headings round-trip verbatim.
func EncodeJSON(w io.Writer, structure model.DocumentStructure) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(structure); err != nil {
		return fmt.Errorf("encode structure: %w", err)
	}
	return nil
}

// Marshal returns the structure's JSON serialization
func Marshal(structure model.DocumentStructure) ([]byte, error) {
	var buf bytes.Buffer
	if err := EncodeJSON(&buf, structure); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ValidateJSON checks serialized output against the structure schema: a
// string title plus an outline of {level, text, page} entries with level one
// of H1, H2, H3 and page a positive integer.
func ValidateJSON(data []byte) error {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse output: %w", err)
	}
	if err := structureSchema.Validate(doc); err != nil {
		return fmt.Errorf("validate output: %w", err)
	}
	return nil
}
