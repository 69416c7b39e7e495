// Package buffer provides the zero-copy byte ownership primitives the RESP
// pipeline is built on: a growable read/write Accumulator and Frozen, an
// immutable refcounted view carved out of one without copying.
//
// Frozen ranges keep their own backing array alive independently of the
// Accumulator that produced them, so the accumulator is free to grow,
// discard its consumed prefix, or reallocate without invalidating any
// Frozen a caller is still holding.
package buffer
