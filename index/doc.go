// Package index implements Rover, an in-memory secondary indexer for
// key/value stores.
//
// Rover decodes each raw value into a fixed ordered sequence of typed
// columns through an injected decoder.ValueDecoder and maintains, per
// column position, two synchronized structures over the same entries:
//
//   - a hash index (map keyed by column value) for O(1) exact-match lookup
//   - an order index (B-tree keyed by column value) for ascending traversal
//
// Both structures agree bucket-for-bucket: for any position and column,
// the keys returned by Lookup are exactly the keys contributed by that
// column to SortedKeys, in the same order. Buckets are append-ordered and
// duplicates are preserved; there is no delete or update operation and
// nothing is ever pruned.
//
// # Usage
//
//	rov, err := index.New(decoder.NewSingleText())
//	if err != nil {
//	    return err
//	}
//
//	_ = rov.Index([]byte("1"), []byte("b"))
//	_ = rov.Index([]byte("2"), []byte("a"))
//
//	keys := rov.SortedKeys(0) // ["2", "1"]
//	hit := rov.Lookup(0, column.Text("a")) // ["2"]
//
// # Failure semantics
//
// A failed Index call (decode failure, too many columns) leaves both
// structures exactly as they were before the call; previously indexed
// records are never affected. Errors are recoverable at the call site,
// matched with errors.Is against the errs package sentinels.
//
// # Concurrency
//
// Index is serialized internally; Lookup, SortedKeys and the other read
// operations may run concurrently with each other and with Index, and
// never observe a partially indexed record.
package index
