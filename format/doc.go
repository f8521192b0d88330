// Package format owns the output contract: JSON serialization of inferred
// document structure, schema validation of serialized output, an HTML
// navigation rendering, and input sniffing for the batch driver.
package format
