package extract

import (
	"errors"
	"fmt"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// ErrNoPages reports a structurally valid PDF with zero decodable pages.
var ErrNoPages = errors.New("pdf has no pages")

// PageCount returns the page count of the PDF at path without decoding any
// content streams. A zero-page document returns ErrNoPages.
func PageCount(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open pdf %s: %w", path, err)
	}
	defer f.Close()

	count, err := api.PageCount(f, nil)
	if err != nil {
		return 0, fmt.Errorf("page count %s: %w", path, err)
	}
	if count == 0 {
		return 0, ErrNoPages
	}
	return count, nil
}
