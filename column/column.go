// Package column defines the typed column values extracted from raw records.
//
// A Column is a closed two-variant value: a 64-bit signed integer (Number)
// or a UTF-8 string (Text). Columns are immutable, comparable and hashable,
// which makes them usable both as hash-map keys and as ordering keys for
// sorted traversal.
//
// # Ordering
//
// Columns form a single deterministic total order:
//
//  1. Kind first: every Number sorts before every Text. Cross-variant
//     ordering carries no semantic meaning; it exists so that mixed-variant
//     columns at the same position still produce one stable order.
//  2. Within Number: natural signed integer order.
//  3. Within Text: lexicographic byte order.
//
// # Hashing
//
// Hash returns the xxHash64 of the kind tag followed by the value payload.
// Equal columns always hash equal; the kind tag keeps Number(97) and
// Text("a") from colliding structurally.
package column

import (
	"strconv"
	"strings"

	"github.com/melekes/rover/internal/hash"
)

// Kind identifies the variant held by a Column.
type Kind uint8

const (
	// KindInvalid is the kind of the zero Column. It never appears in a
	// decoded record.
	KindInvalid Kind = 0x0

	// KindNumber identifies an integer column. Numbers sort before text.
	KindNumber Kind = 0x1

	// KindText identifies a string column.
	KindText Kind = 0x2
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "Number"
	case KindText:
		return "Text"
	default:
		return "Invalid"
	}
}

// Column is an immutable tagged value extracted from a raw record at a
// fixed position. The zero value is invalid; construct columns with
// Number or Text.
//
// Column is a comparable value type: == is variant-and-value equality and
// copying a Column never aliases mutable state.
type Column struct {
	kind Kind
	num  int64
	text string
}

// Number creates an integer column.
func Number(v int64) Column {
	return Column{kind: KindNumber, num: v}
}

// Text creates a string column.
func Text(s string) Column {
	return Column{kind: KindText, text: s}
}

// Kind returns the variant held by the column.
func (c Column) Kind() Kind {
	return c.kind
}

// IsValid reports whether the column was constructed with Number or Text.
func (c Column) IsValid() bool {
	return c.kind == KindNumber || c.kind == KindText
}

// Number returns the integer value. The second return value is false when
// the column is not a Number.
func (c Column) Number() (int64, bool) {
	return c.num, c.kind == KindNumber
}

// Text returns the string value. The second return value is false when
// the column is not a Text.
func (c Column) Text() (string, bool) {
	return c.text, c.kind == KindText
}

// Equal reports whether two columns hold the same variant and value.
func (c Column) Equal(other Column) bool {
	return c == other
}

// Compare returns -1, 0 or 1 ordering c against other under the fixed
// total order documented in the package comment: kind first (numbers
// before text), then natural value order within the kind.
func (c Column) Compare(other Column) int {
	if c.kind != other.kind {
		if c.kind < other.kind {
			return -1
		}

		return 1
	}

	switch c.kind {
	case KindNumber:
		switch {
		case c.num < other.num:
			return -1
		case c.num > other.num:
			return 1
		default:
			return 0
		}
	case KindText:
		return strings.Compare(c.text, other.text)
	default:
		return 0
	}
}

// Less reports whether c orders strictly before other.
func (c Column) Less(other Column) bool {
	return c.Compare(other) < 0
}

// Hash returns a stable 64-bit hash consistent with Equal: equal columns
// always produce the same hash across processes and runs.
func (c Column) Hash() uint64 {
	d := hash.New()

	_, _ = d.Write([]byte{byte(c.kind)})
	switch c.kind {
	case KindNumber:
		var buf [8]byte
		v := uint64(c.num)
		for i := range buf {
			buf[i] = byte(v >> (8 * i))
		}
		_, _ = d.Write(buf[:])
	case KindText:
		_, _ = d.WriteString(c.text)
	}

	return d.Sum64()
}

// Clone returns a copy of the column. Columns are immutable value types,
// so this is a plain copy; the method exists to make ownership transfers
// explicit at call sites.
func (c Column) Clone() Column {
	return c
}

// String renders the column for logs and error messages.
func (c Column) String() string {
	switch c.kind {
	case KindNumber:
		return "Number(" + strconv.FormatInt(c.num, 10) + ")"
	case KindText:
		return "Text(" + strconv.Quote(c.text) + ")"
	default:
		return "Invalid"
	}
}
