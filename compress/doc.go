// Package compress provides compression codecs for raw record values.
//
// A backing key/value store may hold record values compressed to save
// space. The decoder.Compressed wrapper uses a Codec from this package to
// restore the original bytes before handing them to the inner value
// decoder, so the indexer itself never sees compressed data.
//
// # Architecture
//
// The package defines three core interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// # Supported algorithms
//
//   - None (TypeNone): pass-through, zero overhead
//   - Zstd (TypeZstd): best compression ratio, moderate speed
//   - S2 (TypeS2): balanced compression and speed
//   - LZ4 (TypeLZ4): fastest decompression, moderate ratio
//
// The Zstd codec has two implementations selected at build time: a cgo
// binding (valyala/gozstd) when cgo is available, and a pure-Go fallback
// (klauspost/compress/zstd) otherwise. Both produce interoperable frames.
//
// # Usage
//
//	codec, err := compress.CreateCodec(compress.TypeZstd)
//	if err != nil {
//	    return err
//	}
//	dec := decoder.NewCompressed(codec, inner)
package compress
