package decoder

import (
	"fmt"
	"strconv"

	"github.com/melekes/rover/column"
)

// SingleText decodes the whole raw value as one text column.
//
// This is the simplest useful decoder: every record contributes exactly
// one column at position 0 holding the value bytes as a UTF-8 string.
type SingleText struct{}

var _ ValueDecoder = SingleText{}

// NewSingleText creates a decoder that maps a value to a single text column.
func NewSingleText() SingleText {
	return SingleText{}
}

// Decode implements ValueDecoder. It never fails.
func (SingleText) Decode(value []byte) ([]column.Column, error) {
	return []column.Column{column.Text(string(value))}, nil
}

// SingleNumber decodes the whole raw value as one integer column. The
// value must be the ASCII decimal representation of a signed 64-bit
// integer, e.g. "42" or "-7".
type SingleNumber struct{}

var _ ValueDecoder = SingleNumber{}

// NewSingleNumber creates a decoder that maps a value to a single number column.
func NewSingleNumber() SingleNumber {
	return SingleNumber{}
}

// Decode implements ValueDecoder. Non-numeric values fail with the
// underlying strconv error.
func (SingleNumber) Decode(value []byte) ([]column.Column, error) {
	v, err := strconv.ParseInt(string(value), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("parse number %q: %w", value, err)
	}

	return []column.Column{column.Number(v)}, nil
}
