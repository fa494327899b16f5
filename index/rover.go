package index

import (
	"bytes"
	"fmt"
	"slices"
	"sync"

	"github.com/google/btree"

	"github.com/melekes/rover/column"
	"github.com/melekes/rover/decoder"
	"github.com/melekes/rover/errs"
	"github.com/melekes/rover/internal/options"
)

// Position identifies a column's position within a decoded record (0-255).
type Position uint8

// MaxColumns is the maximum number of columns a decoded record may
// contain. Records decoding to more columns are rejected with
// errs.ErrTooManyColumns rather than silently truncated or wrapped
// around.
const MaxColumns = 256

// defaultBTreeDegree is the branching factor of the order index.
const defaultBTreeDegree = 32

// bucket holds every source key whose decoded value at a given position
// equals col, in ingestion order.
type bucket struct {
	col  column.Column
	keys [][]byte
}

func bucketLess(a, b *bucket) bool {
	return a.col.Less(b.col)
}

// positionIndex is the pair of synchronized structures maintained for one
// column position. Key slices are shared between the two, so the
// equivalence between them is structural, but each structure is walked
// independently: the map for exact matches, the tree for ordered scans.
type positionIndex struct {
	// hash index: column value -> source keys, O(1) expected access.
	buckets map[column.Column][][]byte
	// order index: buckets ascending by column value.
	tree *btree.BTreeG[*bucket]
	// total source keys indexed at this position.
	total int
}

func newPositionIndex(degree int) *positionIndex {
	return &positionIndex{
		buckets: make(map[column.Column][][]byte),
		tree:    btree.NewG(degree, bucketLess),
	}
}

// Rover is an in-memory indexer which can be used to index any KV
// database. An injected decoder transforms each raw value into a sequence
// of columns; for every column position Rover maintains a hash index for
// O(1) exact lookup and a B-tree for sorted traversal.
//
// Construct with New. The decoder is owned by the indexer and cannot be
// swapped afterward.
type Rover struct {
	mu        sync.RWMutex
	dec       decoder.ValueDecoder
	positions map[Position]*positionIndex
	degree    int
	obs       Observer
	records   int
}

// Option configures a Rover during construction.
type Option = options.Option[*Rover]

// WithObserver installs an observer notified after every ingestion
// attempt. See Observer for delivery guarantees.
func WithObserver(obs Observer) Option {
	return options.NoError(func(r *Rover) {
		r.obs = obs
	})
}

// WithBTreeDegree overrides the branching factor of the order index.
// Useful mainly for tests; the default suits most workloads.
func WithBTreeDegree(degree int) Option {
	return options.New(func(r *Rover) error {
		if degree < 2 {
			return fmt.Errorf("btree degree must be at least 2, got %d", degree)
		}
		r.degree = degree

		return nil
	})
}

// New creates an empty indexer owning the given value decoder.
//
// Returns errs.ErrNilDecoder when dec is nil, or the error of a failing
// option.
func New(dec decoder.ValueDecoder, opts ...Option) (*Rover, error) {
	if dec == nil {
		return nil, errs.ErrNilDecoder
	}

	r := &Rover{
		dec:       dec,
		positions: make(map[Position]*positionIndex),
		degree:    defaultBTreeDegree,
	}
	if err := options.Apply(r, opts...); err != nil {
		return nil, err
	}

	return r, nil
}

// Index decodes value and appends key to both index structures at every
// column position of the decoded record.
//
// The key is copied; the caller keeps ownership of both arguments. A
// value decoding to zero columns is legal and contributes nothing.
// Re-indexing a key whose value decodes to a column it already holds
// creates a duplicate entry; occurrences are preserved, never
// deduplicated.
//
// On failure - errs.ErrDecodeFailed when the decoder rejects the value,
// errs.ErrTooManyColumns when the record exceeds MaxColumns - neither
// structure is touched: all checks complete before the first mutation, so
// a failed call is observably a no-op and previously indexed records are
// unaffected.
func (r *Rover) Index(key, value []byte) error {
	columns, err := r.dec.Decode(value)
	if err != nil {
		err = fmt.Errorf("%w: %w", errs.ErrDecodeFailed, err)
		r.notify(EventRecordRejected, key, 0, err)

		return err
	}

	if len(columns) > MaxColumns {
		err = fmt.Errorf("%w: decoded %d columns, limit is %d", errs.ErrTooManyColumns, len(columns), MaxColumns)
		r.notify(EventRecordRejected, key, len(columns), err)

		return err
	}

	if len(columns) > 0 {
		keyCopy := bytes.Clone(key)

		r.mu.Lock()
		for i, col := range columns {
			r.indexColumn(Position(i), col.Clone(), keyCopy)
		}
		r.records++
		r.mu.Unlock()
	}

	r.notify(EventRecordIndexed, key, len(columns), nil)

	return nil
}

// indexColumn appends key to the hash and order buckets for (pos, col),
// creating them on demand. Caller holds the write lock. Appends cannot
// fail, which is what makes the per-record dual update atomic: every
// failure path in Index runs before the first call here.
func (r *Rover) indexColumn(pos Position, col column.Column, key []byte) {
	pi := r.positions[pos]
	if pi == nil {
		pi = newPositionIndex(r.degree)
		r.positions[pos] = pi
	}

	pi.buckets[col] = append(pi.buckets[col], key)

	if b, ok := pi.tree.Get(&bucket{col: col}); ok {
		b.keys = append(b.keys, key)
	} else {
		pi.tree.ReplaceOrInsert(&bucket{col: col, keys: [][]byte{key}})
	}

	pi.total++
}

// Lookup returns every source key whose decoded value at pos equals col,
// in ingestion order. Returns nil when nothing matches; absence is not an
// error.
//
// The returned slice is owned by the caller, but the key byte slices
// inside it are shared with the index and must not be modified.
func (r *Rover) Lookup(pos Position, col column.Column) [][]byte {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pi := r.positions[pos]
	if pi == nil {
		return nil
	}

	keys := pi.buckets[col]
	if len(keys) == 0 {
		return nil
	}

	out := make([][]byte, len(keys))
	copy(out, keys)

	return out
}

// SortedKeys returns every source key indexed at pos, ordered primarily
// by ascending column value (numbers before text) and secondarily by
// ingestion order within equal column values. Returns nil when the
// position was never indexed.
//
// The returned slice is owned by the caller, but the key byte slices
// inside it are shared with the index and must not be modified.
func (r *Rover) SortedKeys(pos Position) [][]byte {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pi := r.positions[pos]
	if pi == nil {
		return nil
	}

	out := make([][]byte, 0, pi.total)
	pi.tree.Ascend(func(b *bucket) bool {
		out = append(out, b.keys...)
		return true
	})

	return out
}

// RangeKeys returns the source keys at pos whose column value lies in
// [from, to), ascending by column value with ingestion order within
// equal values. A zero (invalid) from starts at the smallest column; a
// zero to scans to the end.
func (r *Rover) RangeKeys(pos Position, from, to column.Column) [][]byte {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pi := r.positions[pos]
	if pi == nil {
		return nil
	}

	var out [][]byte
	collect := func(b *bucket) bool {
		out = append(out, b.keys...)
		return true
	}

	switch {
	case !from.IsValid() && !to.IsValid():
		pi.tree.Ascend(collect)
	case !from.IsValid():
		pi.tree.AscendLessThan(&bucket{col: to}, collect)
	case !to.IsValid():
		pi.tree.AscendGreaterOrEqual(&bucket{col: from}, collect)
	default:
		pi.tree.AscendRange(&bucket{col: from}, &bucket{col: to}, collect)
	}

	return out
}

// Columns returns the distinct column values indexed at pos in ascending
// order. Returns nil when the position was never indexed.
func (r *Rover) Columns(pos Position) []column.Column {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pi := r.positions[pos]
	if pi == nil {
		return nil
	}

	out := make([]column.Column, 0, pi.tree.Len())
	pi.tree.Ascend(func(b *bucket) bool {
		out = append(out, b.col)
		return true
	})

	return out
}

// Len returns the number of source keys indexed at pos, duplicates
// included.
func (r *Rover) Len(pos Position) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pi := r.positions[pos]
	if pi == nil {
		return 0
	}

	return pi.total
}

// Records returns the number of successfully indexed records that
// contributed at least one column.
func (r *Rover) Records() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.records
}

// Positions returns every column position with at least one indexed key,
// in ascending order.
func (r *Rover) Positions() []Position {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Position, 0, len(r.positions))
	for pos := range r.positions {
		out = append(out, pos)
	}
	slices.Sort(out)

	return out
}
