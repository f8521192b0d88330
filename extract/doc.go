// Package extract decodes PDF files into page-ordered streams of positioned
// text elements ready for structure analysis. It is the only package that
// touches PDF internals; everything downstream works on model.TextElement.
package extract
