// Package deck wraps the OOXML presentation library behind an API sized for
// tool handlers: flat parameters in inches and points, 0-based slide and
// shape indexes, and errors that name what went wrong.
//
// This package is the only importer of the presentation library. Everything
// above it works with plain Go values, so the library's schema types never
// leak into the server layer.
package deck
