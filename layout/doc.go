// Package layout implements the document-structure inference engine: font
// hierarchy discovery across a document, multi-signal confidence scoring of
// heading candidates, level classification, title resolution, and outline
// post-processing.
//
// The entry point is StructureAnalyzer:
//
//	analyzer := layout.NewStructureAnalyzer()
//	structure := analyzer.Analyze(pages)
//
// Analysis is a pure function of the page-ordered element stream. The font
// hierarchy derived from a document is threaded explicitly through scoring
// and classification, so concurrent analyses of different documents never
// interfere.
package layout
