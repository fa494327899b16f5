package rover

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/melekes/rover/compress"
	"github.com/melekes/rover/decoder"
)

// TestNewDelimited verifies the delimited constructor wires both indexes
func TestNewDelimited(t *testing.T) {
	rov, err := NewDelimited(",")
	require.NoError(t, err)
	require.NotNil(t, rov)

	require.NoError(t, rov.Index([]byte("user:1"), []byte("alice,30")))
	require.NoError(t, rov.Index([]byte("user:2"), []byte("bob,25")))
	require.NoError(t, rov.Index([]byte("user:3"), []byte("alice,41")))

	keys := rov.Lookup(0, Text("alice"))
	require.Len(t, keys, 2)
	require.Equal(t, "user:1", string(keys[0]))
	require.Equal(t, "user:3", string(keys[1]))

	byAge := rov.SortedKeys(1)
	require.Len(t, byAge, 3)
	require.Equal(t, "user:2", string(byAge[0]))
	require.Equal(t, "user:1", string(byAge[1]))
	require.Equal(t, "user:3", string(byAge[2]))
}

// TestNewBinary verifies the binary constructor round-trips RecordEncoder output
func TestNewBinary(t *testing.T) {
	rov, err := NewBinary()
	require.NoError(t, err)

	enc := NewRecordEncoder()
	defer enc.Finish()

	require.NoError(t, enc.WriteText("alice"))
	enc.WriteNumber(30)

	require.NoError(t, rov.Index([]byte("user:1"), enc.Bytes()))

	require.Len(t, rov.Lookup(0, Text("alice")), 1)
	require.Len(t, rov.Lookup(1, Number(30)), 1)
}

// TestNewCompressedBinary verifies compressed values decode through every codec
func TestNewCompressedBinary(t *testing.T) {
	for _, compression := range []compress.Type{
		compress.TypeNone,
		compress.TypeZstd,
		compress.TypeS2,
		compress.TypeLZ4,
	} {
		t.Run(compression.String(), func(t *testing.T) {
			rov, err := NewCompressedBinary(compression)
			require.NoError(t, err)

			enc := NewRecordEncoder()
			defer enc.Finish()

			require.NoError(t, enc.WriteText("status=ok"))
			enc.WriteNumber(-7)

			codec, err := compress.GetCodec(compression)
			require.NoError(t, err)

			value, err := codec.Compress(enc.Bytes())
			require.NoError(t, err)

			require.NoError(t, rov.Index([]byte("k1"), value))
			require.Len(t, rov.Lookup(1, Number(-7)), 1)
		})
	}
}

// TestNewCompressedBinary_UnknownType verifies unknown compression is rejected
func TestNewCompressedBinary_UnknownType(t *testing.T) {
	rov, err := NewCompressedBinary(compress.Type(0xEE))
	require.Error(t, err)
	require.Nil(t, rov)
}

// TestNew_CustomDecoder verifies the generic constructor accepts any decoder
func TestNew_CustomDecoder(t *testing.T) {
	rov, err := New(decoder.NewSingleText())
	require.NoError(t, err)

	require.NoError(t, rov.Index([]byte("k"), []byte("v")))
	require.Len(t, rov.Lookup(0, Text("v")), 1)
}

// TestColumnID verifies IDs are stable and kind-sensitive
func TestColumnID(t *testing.T) {
	require.Equal(t, ColumnID(Text("alice")), ColumnID(Text("alice")))
	require.NotEqual(t, ColumnID(Text("42")), ColumnID(Number(42)))
}

// TestNew_NilDecoder verifies the nil decoder is rejected at construction
func TestNew_NilDecoder(t *testing.T) {
	rov, err := New(nil)
	require.Error(t, err)
	require.Nil(t, rov)
}
