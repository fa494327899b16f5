package decoder

import (
	"fmt"

	"github.com/melekes/rover/column"
	"github.com/melekes/rover/compress"
)

// Compressed wraps another decoder, decompressing the raw value before
// delegating. Use it when the backing store holds compressed values:
//
//	codec, _ := compress.GetCodec(compress.TypeZstd)
//	dec := decoder.NewCompressed(codec, decoder.NewBinary(engine))
//
// Decompression failures propagate as decode errors; the wrapped decoder
// never sees the compressed bytes.
type Compressed struct {
	dec   compress.Decompressor
	inner ValueDecoder
}

var _ ValueDecoder = Compressed{}

// NewCompressed creates a decoder that decompresses values with dec and
// decodes the result with inner.
func NewCompressed(dec compress.Decompressor, inner ValueDecoder) Compressed {
	return Compressed{dec: dec, inner: inner}
}

// Decode implements ValueDecoder.
func (c Compressed) Decode(value []byte) ([]column.Column, error) {
	raw, err := c.dec.Decompress(value)
	if err != nil {
		return nil, fmt.Errorf("decompress value: %w", err)
	}

	return c.inner.Decode(raw)
}
