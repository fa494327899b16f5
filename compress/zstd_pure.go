//go:build !cgo

package compress

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// Pure-Go Zstandard codec, selected when cgo is unavailable. Produces
// frames interoperable with the gozstd variant, so record values
// compressed under one build decompress under the other.

// zstdDecoderPool pools zstd decoders; the klauspost decoder operates
// without allocations once warmed up, so reuse matters on the ingestion
// path where every compressed value passes through Decompress.
var zstdDecoderPool = sync.Pool{
	New: func() any {
		decoder, err := zstd.NewReader(nil,
			zstd.WithDecoderConcurrency(1), // one value at a time; no parallel frames
			zstd.WithDecoderLowmem(false),
		)
		if err != nil {
			// Cannot fail with these fixed options.
			panic(fmt.Sprintf("failed to create zstd decoder for pool: %v", err))
		}
		return decoder
	},
}

// zstdEncoderPool pools zstd encoders for the write path.
var zstdEncoderPool = sync.Pool{
	New: func() any {
		encoder, err := zstd.NewWriter(nil,
			zstd.WithEncoderLevel(zstd.SpeedDefault),
			zstd.WithEncoderCRC(false), // the backing store owns integrity
		)
		if err != nil {
			// Cannot fail with these fixed options.
			panic(fmt.Sprintf("failed to create zstd encoder for pool: %v", err))
		}
		return encoder
	},
}

// Compress compresses the input data using Zstandard compression.
//
// Uses a pooled encoder; EncodeAll is stateless, so a pooled instance is
// safe across calls.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	encoder := zstdEncoderPool.Get().(*zstd.Encoder)
	defer zstdEncoderPool.Put(encoder)

	compressed := encoder.EncodeAll(data, nil)

	return compressed, nil
}

// Decompress decompresses Zstd-compressed data.
//
// Returns an error when the value is corrupted or was not compressed with
// Zstd; a failed call leaves the pooled decoder reusable.
func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	decoder := zstdDecoderPool.Get().(*zstd.Decoder)
	defer zstdDecoderPool.Put(decoder)

	decompressed, err := decoder.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}

	return decompressed, nil
}
