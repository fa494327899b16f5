package compress

// ZstdCompressor provides Zstandard compression for raw record values.
//
// Zstd favors compression ratio over speed, which suits values that are
// written once and decoded on every index rebuild:
//   - Cold or archived record values
//   - Values shipped over bandwidth-limited links
//   - Stores where space matters more than ingest latency
//
// The implementation is selected at build time: valyala/gozstd when cgo is
// available, klauspost/compress/zstd otherwise. The two produce
// interoperable Zstandard frames.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
//
// Example:
//
//	compressor := NewZstdCompressor()
//	compressed, err := compressor.Compress(data)
//	if err != nil {
//		return err
//	}
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
