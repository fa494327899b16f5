package decoder

import (
	"strconv"
	"strings"

	"github.com/melekes/rover/column"
)

// DefaultSeparator is the field separator used by NewDelimited when the
// caller passes an empty string.
const DefaultSeparator = ","

// Delimited decodes textual values by splitting on a fixed separator.
// Fields that parse as signed 64-bit decimal integers become Number
// columns; everything else becomes Text.
//
// An empty value decodes to zero columns. A value without the separator
// decodes to a single column. Field order determines column position.
//
// Delimited is stateless and safe for concurrent use.
type Delimited struct {
	sep string
}

var _ ValueDecoder = Delimited{}

// NewDelimited creates a decoder splitting values on the given separator.
// An empty separator selects DefaultSeparator.
func NewDelimited(sep string) Delimited {
	if sep == "" {
		sep = DefaultSeparator
	}

	return Delimited{sep: sep}
}

// Decode implements ValueDecoder. It never fails: unparsable fields simply
// stay text.
func (d Delimited) Decode(value []byte) ([]column.Column, error) {
	if len(value) == 0 {
		return nil, nil
	}

	fields := strings.Split(string(value), d.sep)
	columns := make([]column.Column, 0, len(fields))
	for _, f := range fields {
		if n, err := strconv.ParseInt(f, 10, 64); err == nil {
			columns = append(columns, column.Number(n))
		} else {
			columns = append(columns, column.Text(f))
		}
	}

	return columns, nil
}
