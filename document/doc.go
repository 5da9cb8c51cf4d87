// Package document implements the read-only text snapshot observed by the
// live-preview engine.
//
// Offsets are byte offsets into the UTF-8 text. Positions are 0-based
// (Row, GraphemeCol) pairs, where GraphemeCol counts grapheme clusters.
// Ranges are half-open: [From, To).
package document
