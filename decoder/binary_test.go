package decoder

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/melekes/rover/column"
	"github.com/melekes/rover/endian"
	"github.com/melekes/rover/errs"
)

func TestBinary_RoundTrip(t *testing.T) {
	engine := endian.GetLittleEndianEngine()
	enc := NewBinaryEncoder(engine)
	defer enc.Finish()

	enc.WriteNumber(42)
	require.NoError(t, enc.WriteText("hello"))
	enc.WriteNumber(-7)
	require.NoError(t, enc.WriteText(""))

	require.Equal(t, 4, enc.Len())

	dec := NewBinary(engine)
	columns, err := dec.Decode(enc.Bytes())
	require.NoError(t, err)

	expected := []column.Column{
		column.Number(42),
		column.Text("hello"),
		column.Number(-7),
		column.Text(""),
	}
	require.Equal(t, expected, columns)
}

func TestBinary_RoundTrip_BigEndian(t *testing.T) {
	engine := endian.GetBigEndianEngine()
	enc := NewBinaryEncoder(engine)
	defer enc.Finish()

	enc.WriteNumber(1 << 40)

	columns, err := NewBinary(engine).Decode(enc.Bytes())
	require.NoError(t, err)
	require.Equal(t, []column.Column{column.Number(1 << 40)}, columns)
}

func TestBinary_WriteColumn(t *testing.T) {
	engine := endian.GetLittleEndianEngine()
	enc := NewBinaryEncoder(engine)
	defer enc.Finish()

	require.NoError(t, enc.WriteColumn(column.Number(1)))
	require.NoError(t, enc.WriteColumn(column.Text("a")))

	err := enc.WriteColumn(column.Column{})
	require.ErrorIs(t, err, errs.ErrUnknownColumnKind)

	columns, err := NewBinary(engine).Decode(enc.Bytes())
	require.NoError(t, err)
	require.Equal(t, []column.Column{column.Number(1), column.Text("a")}, columns)
}

func TestBinary_Decode_EmptyValue(t *testing.T) {
	dec := NewBinary(endian.GetLittleEndianEngine())

	columns, err := dec.Decode(nil)
	require.NoError(t, err)
	require.Empty(t, columns)

	columns, err = dec.Decode([]byte{})
	require.NoError(t, err)
	require.Empty(t, columns)
}

func TestBinary_Decode_TruncatedNumber(t *testing.T) {
	dec := NewBinary(endian.GetLittleEndianEngine())

	// Kind tag followed by fewer than 8 payload bytes.
	_, err := dec.Decode([]byte{byte(column.KindNumber), 0x01, 0x02})
	require.ErrorIs(t, err, errs.ErrShortValue)
}

func TestBinary_Decode_TruncatedText(t *testing.T) {
	dec := NewBinary(endian.GetLittleEndianEngine())

	// Length prefix claims 10 bytes, only 2 present.
	_, err := dec.Decode([]byte{byte(column.KindText), 10, 'a', 'b'})
	require.ErrorIs(t, err, errs.ErrShortValue)
}

func TestBinary_Decode_MissingTextLength(t *testing.T) {
	dec := NewBinary(endian.GetLittleEndianEngine())

	_, err := dec.Decode([]byte{byte(column.KindText)})
	require.ErrorIs(t, err, errs.ErrShortValue)
}

func TestBinary_Decode_UnknownKind(t *testing.T) {
	dec := NewBinary(endian.GetLittleEndianEngine())

	_, err := dec.Decode([]byte{0x7f, 0x00})
	require.ErrorIs(t, err, errs.ErrUnknownColumnKind)
}

func TestBinary_Decode_TrailingGarbage(t *testing.T) {
	engine := endian.GetLittleEndianEngine()
	enc := NewBinaryEncoder(engine)
	defer enc.Finish()
	enc.WriteNumber(1)

	value := append0(enc.Bytes())

	_, err := NewBinary(engine).Decode(value)
	require.ErrorIs(t, err, errs.ErrUnknownColumnKind)
}

// append0 copies the record and appends a lone invalid kind byte.
func append0(record []byte) []byte {
	out := make([]byte, len(record), len(record)+1)
	copy(out, record)

	return append(out, 0x00)
}

func TestBinaryEncoder_WriteText_TooLong(t *testing.T) {
	enc := NewBinaryEncoder(endian.GetLittleEndianEngine())
	defer enc.Finish()

	long := make([]byte, MaxTextLength+1)
	err := enc.WriteText(string(long))
	require.ErrorIs(t, err, errs.ErrTextTooLong)
	require.Equal(t, 0, enc.Len(), "rejected column must not be counted")
	require.Equal(t, 0, enc.Size(), "rejected column must not be written")
}

func TestBinaryEncoder_Reset(t *testing.T) {
	engine := endian.GetLittleEndianEngine()
	enc := NewBinaryEncoder(engine)
	defer enc.Finish()

	enc.WriteNumber(1)
	require.Equal(t, 1, enc.Len())
	require.NotZero(t, enc.Size())

	enc.Reset()
	require.Equal(t, 0, enc.Len())
	require.Equal(t, 0, enc.Size())

	require.NoError(t, enc.WriteText("fresh"))
	columns, err := NewBinary(engine).Decode(enc.Bytes())
	require.NoError(t, err)
	require.Equal(t, []column.Column{column.Text("fresh")}, columns)
}

func TestBinary_Decode_DoesNotAliasInput(t *testing.T) {
	engine := endian.GetLittleEndianEngine()
	enc := NewBinaryEncoder(engine)
	enc.WriteNumber(5)
	require.NoError(t, enc.WriteText("alias"))

	value := make([]byte, enc.Size())
	copy(value, enc.Bytes())
	enc.Finish()

	columns, err := NewBinary(engine).Decode(value)
	require.NoError(t, err)

	// Clobber the input; decoded columns must be unaffected.
	for i := range value {
		value[i] = 0xff
	}

	s, ok := columns[1].Text()
	require.True(t, ok)
	require.Equal(t, "alias", s)
}

func BenchmarkBinary_Decode(b *testing.B) {
	engine := endian.GetLittleEndianEngine()
	enc := NewBinaryEncoder(engine)
	defer enc.Finish()
	for i := 0; i < 8; i++ {
		enc.WriteNumber(int64(i) * 1000)
		_ = enc.WriteText("field-value")
	}
	value := enc.Bytes()
	dec := NewBinary(engine)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dec.Decode(value)
	}
}
