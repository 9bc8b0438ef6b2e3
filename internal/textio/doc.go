// Package textio is the text boundary of the model: descriptor-line
// parsing, value-token type inference, block readers, and fixed-width
// pipe-delimited rendering.
//
// The wire format is line oriented. A descriptor line announces a block:
//
//	#index[len, name]
//	#column[rows, type, name]
//	#table[rows, cols, type]
//
// followed by whitespace-separated value lines. Value tokens are
// type-inferred in order: boolean, integer, double, ISO date-time, the
// case-insensitive word "null" (mapped to empty text), then text. Text
// tokens are NFC-normalized on input.
//
// The core model performs no I/O and no logging; this package consumes
// only its public constructors and accessors.
package textio
