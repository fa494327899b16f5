package decoder

import (
	"encoding/binary"
	"fmt"

	"github.com/melekes/rover/column"
	"github.com/melekes/rover/endian"
	"github.com/melekes/rover/errs"
	"github.com/melekes/rover/internal/pool"
)

// MaxTextLength is the maximum byte length of a text column in the binary
// record format. Longer strings are rejected at encode time.
const MaxTextLength = 1 << 16 // 64KiB

// Binary decodes rover's tag-prefixed binary record format.
//
// Each column is encoded as a one-byte kind tag followed by the payload:
//
//	Number: [kind:0x1][value:int64, engine byte order]
//	Text:   [kind:0x2][length:uvarint][bytes:UTF-8]
//
// Records are the plain concatenation of their columns; an empty value is
// a record with zero columns. The format carries no framing or checksum,
// it relies on the backing store to deliver values intact.
//
// Binary is stateless and safe for concurrent use.
type Binary struct {
	engine endian.EndianEngine
}

var _ ValueDecoder = Binary{}

// NewBinary creates a decoder for the binary record format using the
// specified endian engine. The engine must match the one the values were
// encoded with; little-endian is the convention for rover records.
func NewBinary(engine endian.EndianEngine) Binary {
	return Binary{engine: engine}
}

// Decode implements ValueDecoder.
//
// Returns errs.ErrShortValue when the value ends in the middle of a column
// and errs.ErrUnknownColumnKind for an unrecognized kind tag. The returned
// columns do not alias the input slice.
func (d Binary) Decode(value []byte) ([]column.Column, error) {
	if len(value) == 0 {
		return nil, nil
	}

	var columns []column.Column
	pos := 0
	for pos < len(value) {
		kind := column.Kind(value[pos])
		pos++

		switch kind {
		case column.KindNumber:
			if pos+8 > len(value) {
				return nil, fmt.Errorf("%w: number column %d at offset %d", errs.ErrShortValue, len(columns), pos-1)
			}
			v := int64(d.engine.Uint64(value[pos : pos+8]))
			pos += 8
			columns = append(columns, column.Number(v))

		case column.KindText:
			length, n := binary.Uvarint(value[pos:])
			if n <= 0 {
				return nil, fmt.Errorf("%w: text length of column %d at offset %d", errs.ErrShortValue, len(columns), pos-1)
			}
			pos += n
			if length > MaxTextLength || pos+int(length) > len(value) {
				return nil, fmt.Errorf("%w: text column %d at offset %d", errs.ErrShortValue, len(columns), pos-n-1)
			}
			// string() copies, so the column does not alias the value slice.
			columns = append(columns, column.Text(string(value[pos:pos+int(length)])))
			pos += int(length)

		default:
			return nil, fmt.Errorf("%w: 0x%02x at offset %d", errs.ErrUnknownColumnKind, byte(kind), pos-1)
		}
	}

	return columns, nil
}

// BinaryEncoder produces values in the binary record format accepted by
// Binary. It exists for tests, tooling and write paths that store decoded
// columns back into the key/value store.
//
// Note: The BinaryEncoder is NOT thread-safe. Each encoder instance should
// be used by a single goroutine at a time.
type BinaryEncoder struct {
	buf    *pool.ByteBuffer
	engine endian.EndianEngine
	count  int
}

// NewBinaryEncoder creates a new encoder for the binary record format
// using the specified endian engine.
//
// The encoder uses a pooled byte buffer; call Finish to return it to the
// pool once the encoded bytes have been consumed.
func NewBinaryEncoder(engine endian.EndianEngine) *BinaryEncoder {
	return &BinaryEncoder{
		engine: engine,
		buf:    pool.GetRecordBuffer(),
	}
}

// WriteNumber appends an integer column to the record.
func (e *BinaryEncoder) WriteNumber(v int64) {
	e.buf.Grow(1 + 8)
	e.buf.B = append(e.buf.B, byte(column.KindNumber))
	e.buf.B = e.engine.AppendUint64(e.buf.B, uint64(v))
	e.count++
}

// WriteText appends a string column to the record.
//
// Returns errs.ErrTextTooLong when the string exceeds MaxTextLength.
func (e *BinaryEncoder) WriteText(s string) error {
	if len(s) > MaxTextLength {
		return fmt.Errorf("%w: %d bytes exceeds maximum %d", errs.ErrTextTooLong, len(s), MaxTextLength)
	}

	e.buf.Grow(1 + binary.MaxVarintLen64 + len(s))
	e.buf.B = append(e.buf.B, byte(column.KindText))
	e.buf.B = binary.AppendUvarint(e.buf.B, uint64(len(s)))
	e.buf.B = append(e.buf.B, s...)
	e.count++

	return nil
}

// WriteColumn appends a column of either kind to the record.
func (e *BinaryEncoder) WriteColumn(c column.Column) error {
	if v, ok := c.Number(); ok {
		e.WriteNumber(v)
		return nil
	}
	if s, ok := c.Text(); ok {
		return e.WriteText(s)
	}

	return fmt.Errorf("%w: %s", errs.ErrUnknownColumnKind, c.Kind())
}

// Bytes returns the encoded record.
// The returned slice is valid until the next call to a Write method, Reset
// or Finish. The caller should not modify the returned slice.
func (e *BinaryEncoder) Bytes() []byte {
	return e.buf.Bytes()
}

// Len returns the number of columns written since the last Reset.
func (e *BinaryEncoder) Len() int {
	return e.count
}

// Size returns the size in bytes of the encoded record.
func (e *BinaryEncoder) Size() int {
	return e.buf.Len()
}

// Reset clears the encoder for a new record, keeping the internal buffer.
func (e *BinaryEncoder) Reset() {
	e.buf.Reset()
	e.count = 0
}

// Finish returns the internal buffer to the pool.
//
// After calling Finish the encoder is no longer usable; create a new
// encoder to encode more records. Copy the result of Bytes before calling
// Finish if it is still needed.
func (e *BinaryEncoder) Finish() {
	pool.PutRecordBuffer(e.buf)
	e.buf = nil
}
