package format

import (
	"os"
	"path/filepath"
	"testing"
)

func TestHasPDFExtension(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"report.pdf", true},
		{"REPORT.PDF", true},
		{"archive/scan.Pdf", true},
		{"report.pdf.bak", false},
		{"report.docx", false},
		{"report", false},
	}

	for _, tt := range tests {
		if got := HasPDFExtension(tt.name); got != tt.want {
			t.Errorf("HasPDFExtension(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestSniffPDF(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want bool
	}{
		{"pdf header", []byte("%PDF-1.7\n%\xe2\xe3\xcf\xd3"), true},
		{"old version", []byte("%PDF-1.0"), true},
		{"zip header", []byte("PK\x03\x04"), false},
		{"html", []byte("<!DOCTYPE html>"), false},
		{"truncated", []byte("%PD"), false},
		{"empty", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SniffPDF(tt.data); got != tt.want {
				t.Errorf("SniffPDF = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSniffPDFFile(t *testing.T) {
	dir := t.TempDir()

	pdfPath := filepath.Join(dir, "doc.bin")
	if err := os.WriteFile(pdfPath, []byte("%PDF-1.4\n1 0 obj\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	textPath := filepath.Join(dir, "notes.pdf")
	if err := os.WriteFile(textPath, []byte("just some text"), 0o644); err != nil {
		t.Fatal(err)
	}
	emptyPath := filepath.Join(dir, "empty.pdf")
	if err := os.WriteFile(emptyPath, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	if ok, err := SniffPDFFile(pdfPath); err != nil || !ok {
		t.Errorf("SniffPDFFile(pdf content) = %v, %v; want true", ok, err)
	}
	if ok, err := SniffPDFFile(textPath); err != nil || ok {
		t.Errorf("SniffPDFFile(text content) = %v, %v; want false", ok, err)
	}
	if ok, err := SniffPDFFile(emptyPath); err != nil || ok {
		t.Errorf("SniffPDFFile(empty file) = %v, %v; want false, nil", ok, err)
	}
	if _, err := SniffPDFFile(filepath.Join(dir, "missing.pdf")); err == nil {
		t.Error("SniffPDFFile(missing) did not return an error")
	}
}
