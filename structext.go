// Package structext infers the semantic structure of PDF documents: a title
// and an H1/H2/H3 outline derived from font usage, page layout, and text
// patterns, without relying on embedded bookmarks.
//
// Basic usage:
//
//	structure, err := structext.Open("report.pdf").Structure()
//	if err != nil {
//	    // handle error
//	}
//
// With options:
//
//	data, err := structext.Open("report.pdf").
//	    MaxPages(50).
//	    MinConfidence(0.5).
//	    JSON()
//
// For pipelines that must never fail, Result degrades to an empty structure
// instead of returning an error:
//
//	res := structext.Open("scan.pdf").Result()
//	if res.Degraded {
//	    // empty structure was substituted
//	}
package structext

import "io"

// Open prepares an Analyzer for the PDF at filename. No file access happens
// until a terminal method is called.
//
// Example:
//
//	structure, err := structext.Open("report.pdf").Structure()
func Open(filename string) *Analyzer {
	return &Analyzer{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromReader prepares an Analyzer reading a PDF from an already open reader
// of known size. The caller keeps ownership of the reader.
func FromReader(r io.ReaderAt, size int64) *Analyzer {
	return &Analyzer{
		reader:     r,
		readerSize: size,
		options:    defaultOptions(),
	}
}

// Must wraps a call returning (T, error) and panics on error. Intended for
// scripts and tests where error handling would be cumbersome.
//
// Example:
//
//	data := structext.Must(structext.Open("report.pdf").JSON())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
