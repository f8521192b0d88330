// Package model defines the data types shared across the structure
// extraction pipeline: positioned text elements as produced by the decoding
// layer, heading levels, and the final document structure contract.
package model
