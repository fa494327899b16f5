// Package rover provides an in-memory secondary index for key/value stores
// whose values are opaque byte slices.
//
// A Rover sits in front of the primary store: every time a record is written,
// the application forwards the key and the raw value to the Rover, which
// decodes the value into typed columns and indexes the key under each column.
// The primary store remains the source of truth for values; the Rover only
// answers "which keys have this column value" and "give me keys ordered by
// this column".
//
// # Core Features
//
//   - Pluggable value decoding (decoder.ValueDecoder) for any value format
//   - Dual index per column position: hash index for O(1) exact-match
//     lookups, order index (B-tree) for sorted and range scans
//   - Up to 256 column positions per record
//   - Atomic ingestion: a record that fails to decode leaves both indexes
//     untouched
//   - Duplicate-preserving: every indexed occurrence of a key is kept, in
//     arrival order
//   - Safe for concurrent use (single writer, many readers)
//
// # Basic Usage
//
// Indexing comma-separated values and querying by column:
//
//	import "github.com/melekes/rover"
//
//	// Position 0 holds the name, position 1 the age.
//	rov, _ := rover.NewDelimited(",")
//
//	rov.Index([]byte("user:1"), []byte("alice,30"))
//	rov.Index([]byte("user:2"), []byte("bob,25"))
//	rov.Index([]byte("user:3"), []byte("alice,41"))
//
//	// Exact match on the name column.
//	keys := rov.Lookup(0, rover.Text("alice")) // user:1, user:3
//
//	// All keys ordered by age.
//	byAge := rov.SortedKeys(1) // user:2, user:1, user:3
//
// Binary values use the length-prefixed record format from the decoder
// package:
//
//	enc := rover.NewRecordEncoder()
//	enc.WriteText("alice")
//	enc.WriteNumber(30)
//
//	rov, _ := rover.NewBinary()
//	rov.Index([]byte("user:1"), enc.Bytes())
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the index
// package. For fine-grained control (custom decoders, byte order, observers)
// use the index, decoder, column and compress packages directly.
package rover

import (
	"github.com/melekes/rover/column"
	"github.com/melekes/rover/compress"
	"github.com/melekes/rover/decoder"
	"github.com/melekes/rover/endian"
	"github.com/melekes/rover/index"
)

// Rover is re-exported so callers of the convenience constructors don't need
// to import the index package for the type alone.
type Rover = index.Rover

// Position identifies a column position within a record (0-255).
type Position = index.Position

// Column re-exports the typed column value used in queries.
type Column = column.Column

// Number creates a numeric query column.
func Number(v int64) Column { return column.Number(v) }

// Text creates a textual query column.
func Text(s string) Column { return column.Text(s) }

// New creates a Rover with a custom value decoder.
//
// This is the most flexible factory function. Use it when the built-in
// decoders don't match the value format, or to pass index options such as
// index.WithObserver or index.WithBTreeDegree.
//
// Parameters:
//   - dec: Decoder turning raw values into typed columns (must be non-nil)
//   - opts: Optional configuration functions (see index.Option)
//
// Returns:
//   - *Rover: The created index.
//   - error: An error if dec is nil or an option is invalid.
//
// Example:
//
//	dec := decoder.Func(func(value []byte) ([]column.Column, error) {
//	    var rec myRecord
//	    if err := json.Unmarshal(value, &rec); err != nil {
//	        return nil, err
//	    }
//	    return []column.Column{column.Text(rec.Name), column.Number(rec.Age)}, nil
//	})
//	rov, err := rover.New(dec, index.WithObserver(index.NewLoggingObserver(nil)))
func New(dec decoder.ValueDecoder, opts ...index.Option) (*Rover, error) {
	return index.New(dec, opts...)
}

// NewBinary creates a Rover for values in the binary record format produced
// by RecordEncoder, using little-endian byte order.
//
// This is the recommended constructor when the application controls the
// value encoding: the binary format is compact, self-describing and decodes
// without allocation-heavy parsing.
//
// Example:
//
//	rov, err := rover.NewBinary()
func NewBinary(opts ...index.Option) (*Rover, error) {
	return index.New(decoder.NewBinary(endian.GetLittleEndianEngine()), opts...)
}

// NewDelimited creates a Rover for values holding separator-joined fields.
// Fields that parse as base-10 integers become Number columns, everything
// else becomes a Text column.
//
// Example:
//
//	rov, err := rover.NewDelimited(",")
func NewDelimited(sep string, opts ...index.Option) (*Rover, error) {
	return index.New(decoder.NewDelimited(sep), opts...)
}

// NewCompressedBinary creates a Rover for binary record values that were
// compressed with the given algorithm before being written to the store.
// Values are decompressed on ingestion, then decoded like NewBinary.
//
// Parameters:
//   - compression: One of compress.TypeZstd, compress.TypeS2, compress.TypeLZ4
//     or compress.TypeNone
//   - opts: Optional configuration functions (see index.Option)
//
// Returns an error if the compression type is unknown.
//
// Example:
//
//	rov, err := rover.NewCompressedBinary(compress.TypeZstd)
func NewCompressedBinary(compression compress.Type, opts ...index.Option) (*Rover, error) {
	codec, err := compress.GetCodec(compression)
	if err != nil {
		return nil, err
	}

	inner := decoder.NewBinary(endian.GetLittleEndianEngine())

	return index.New(decoder.NewCompressed(codec, inner), opts...)
}

// ColumnID returns the stable 64-bit hash identifier of a column value.
//
// Equal columns always produce the same ID, across processes and
// restarts (xxHash64 over the column's kind and payload). Use it when an
// application needs a fixed-size handle for a column value, e.g. as a
// cache key or for cross-system correlation. The index itself never
// narrows columns to IDs; lookups use the full Column value.
//
// Example:
//
//	id := rover.ColumnID(rover.Text("alice"))
func ColumnID(col Column) uint64 {
	return col.Hash()
}

// NewRecordEncoder creates an encoder producing values in the binary record
// format understood by NewBinary and NewCompressedBinary, using little-endian
// byte order. Call Finish when done to return the internal buffer to its
// pool.
//
// Example:
//
//	enc := rover.NewRecordEncoder()
//	defer enc.Finish()
//	enc.WriteText("alice")
//	enc.WriteNumber(30)
//	rov.Index(key, enc.Bytes())
func NewRecordEncoder() *decoder.BinaryEncoder {
	return decoder.NewBinaryEncoder(endian.GetLittleEndianEngine())
}
