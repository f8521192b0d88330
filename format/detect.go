package format

import (
	"io"
	"os"
	"path/filepath"
	"strings"
)

// pdfMagic is the required header of a PDF file
var pdfMagic = []byte("%PDF-")

// HasPDFExtension reports whether filename carries a .pdf extension,
// case-insensitively.
func HasPDFExtension(filename string) bool {
	return strings.EqualFold(filepath.Ext(filename), ".pdf")
}

// SniffPDF reports whether data begins with the PDF magic header
func SniffPDF(data []byte) bool {
	if len(data) < len(pdfMagic) {
		return false
	}
	return string(data[:len(pdfMagic)]) == string(pdfMagic)
}

// SniffPDFFile reports whether the file at path is a PDF by magic bytes.
// The extension is not consulted, so renamed or extension-less files are
// still detected. More reliable than extension-based detection for batch
// input directories.
func SniffPDFFile(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	magic := make([]byte, len(pdfMagic))
	if _, err := io.ReadFull(f, magic); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return false, nil
		}
		return false, err
	}
	return SniffPDF(magic), nil
}
