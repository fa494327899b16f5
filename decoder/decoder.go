// Package decoder defines the value-decoding contract used by the indexer
// and ships the built-in decoder plug-ins.
//
// A ValueDecoder turns a raw record value from the backing key/value store
// into an ordered sequence of typed columns. The indexer owns exactly one
// decoder, injected at construction; everything format-specific lives
// behind this interface.
//
// Built-in implementations:
//   - Binary: rover's tag-prefixed binary record format (see NewBinary)
//   - SingleText / SingleNumber: the whole value as one column
//   - Delimited: textual values split on a separator
//   - Compressed: wraps another decoder, decompressing the value first
//
// Custom formats implement ValueDecoder directly, or wrap a closure with
// Func:
//
//	dec := decoder.Func(func(value []byte) ([]column.Column, error) {
//	    return []column.Column{column.Text(string(value))}, nil
//	})
package decoder

import "github.com/melekes/rover/column"

// ValueDecoder transforms a raw record value into an ordered sequence of
// columns.
//
// Implementations must be pure and deterministic: the same input always
// yields the same column sequence of the same length. Malformed input is
// reported through the error return, never by panicking; the indexer wraps
// such errors as decode failures and leaves its state untouched.
//
// Decode must not retain the value slice after returning.
type ValueDecoder interface {
	Decode(value []byte) ([]column.Column, error)
}

// Func adapts a plain function to the ValueDecoder interface.
type Func func(value []byte) ([]column.Column, error)

// Decode implements ValueDecoder.
func (f Func) Decode(value []byte) ([]column.Column, error) {
	return f(value)
}
