// Package text provides the text-level collaborators of the structure
// pipeline: script classification of spans, unicode normalization and
// heading cleanup, and noise-span rejection.
package text
