package base32768

import (
	"bytes"
	"io"
	"math/rand"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func encodeString(t *testing.T, data string) string {
	t.Helper()
	out := &bytes.Buffer{}
	require.NoError(t, Encode(strings.NewReader(data), out))
	return out.String()
}

func decodeString(data string) (string, error) {
	out := &bytes.Buffer{}
	err := Decode(strings.NewReader(data), out)
	return out.String(), err
}

func Test_Encode_WithoutPadding(t *testing.T) {
	require.Equal(t, strings.Repeat("\xf9%", 8), encodeString(t, strings.Repeat("\x00", 15)))
}

func Test_Encode_WithPadding1(t *testing.T) {
	require.Equal(t, strings.Repeat("\xf9%", 7)+"\xf8%", encodeString(t, strings.Repeat("\x00", 13)))
}

func Test_Encode_WithPadding14(t *testing.T) {
	require.Equal(t, "\xff\xff\xfa%\xeb%", encodeString(t, "\xff\xff"))
}

func Test_Encode_SingleByte(t *testing.T) {
	require.Equal(t, "k'\xf2%", encodeString(t, "\xff"))
}

func Test_Encode_Empty(t *testing.T) {
	require.Equal(t, "", encodeString(t, ""))
}

func Test_Decode_WithoutPadding(t *testing.T) {
	res, err := decodeString(strings.Repeat("\xf9%", 8))
	require.NoError(t, err)
	require.Equal(t, strings.Repeat("\x00", 15), res)
}

func Test_Decode_WithPadding1(t *testing.T) {
	res, err := decodeString(strings.Repeat("\xf9%", 7) + "\xf8%")
	require.NoError(t, err)
	require.Equal(t, strings.Repeat("\x00", 13), res)
}

func Test_Decode_WithPadding14(t *testing.T) {
	res, err := decodeString("\xff\xff\xfa%\xeb%")
	require.NoError(t, err)
	require.Equal(t, "\xff\xff", res)
}

func Test_Decode_Empty(t *testing.T) {
	res, err := decodeString("")
	require.NoError(t, err)
	require.Equal(t, "", res)
}

func Test_Decode_WithInvalidPadding(t *testing.T) {
	_, err := decodeString("\xff\xff\xfa%\xf8%")
	require.True(t, errors.Is(err, ErrBadPadding))
}

func Test_Decode_WithDataAfterPadding(t *testing.T) {
	_, err := decodeString(strings.Repeat("k'\xf2%", 2))
	require.True(t, errors.Is(err, ErrDataAfterPadding))
	require.True(t, errors.Is(err, ErrInvalidInput))
}

func Test_Decode_WithSingleByteAfterPadding(t *testing.T) {
	for _, input := range []string{"\x00", "\xff\xff", "hello", strings.Repeat("\x00", 13), strings.Repeat("\x00", 15)} {
		encoded := encodeString(t, input)
		_, err := decodeString(encoded + "%")
		if len(input)*8%Bits == 0 {
			// no padding symbol: the extra byte is an incomplete symbol
			require.True(t, errors.Is(err, ErrNonEvenCharCount))
		} else {
			require.True(t, errors.Is(err, ErrDataAfterPadding), "input %q: %v", input, err)
		}
	}
}

func Test_Decode_WithNonEvenCharCount(t *testing.T) {
	_, err := decodeString(strings.Repeat("\xf9%", 8) + "\xff")
	require.True(t, errors.Is(err, ErrNonEvenCharCount))
}

func Test_Decode_WithInvalidByte(t *testing.T) {
	_, err := decodeString("\xf9%\xf9+")
	require.True(t, errors.Is(err, ErrInvalidByteValue))
}

func Test_Decode_WithFifteenBitsOfPadding(t *testing.T) {
	// -15 is not a valid symbol: a padding of 15 bits or more can never be produced
	s := encodeInteger(0)
	_, err := decodeString(string(s[:]) + "\xea%")
	require.True(t, errors.Is(err, ErrInvalidByteSequence))
}

func Test_Decode_KeepsPartialOutput(t *testing.T) {
	out := &bytes.Buffer{}
	err := Decode(strings.NewReader(strings.Repeat("\xf9%", 8)+"\xff"), out)
	require.Error(t, err)
	// the last 16 bits are still held back for a possible padding symbol
	require.Equal(t, strings.Repeat("\x00", 13), out.String())
}

func Test_Decode_KeepsPartialOutput_NonByteWriter(t *testing.T) {
	cases := map[string]struct {
		input string
		want  string
		err   error
	}{
		"non-even":      {strings.Repeat("\xf9%", 8) + "\xff", strings.Repeat("\x00", 13), ErrNonEvenCharCount},
		"invalid byte":  {strings.Repeat("\xf9%", 8) + "\xf9+", strings.Repeat("\x00", 13), ErrInvalidByteValue},
		"after padding": {"k'\xf2%k'\xf2%", "\xff", ErrDataAfterPadding},
	}
	for name, c := range cases {
		out := &plainWriter{}
		err := Decode(strings.NewReader(c.input), out)
		require.Truef(t, errors.Is(err, c.err), "%v: %v", name, err)
		require.Equalf(t, c.want, out.buf.String(), "%v", name)
	}
}

func Test_DecodeBuffered_TooSmall(t *testing.T) {
	err := DecodeBuffered(strings.NewReader(""), &bytes.Buffer{}, Bits-1)
	require.True(t, errors.Is(err, ErrValueOutOfRange))
}

func Test_DecodeBuffered_TooLarge(t *testing.T) {
	for _, input := range []string{"", "k'\xf2%"} {
		err := DecodeBuffered(strings.NewReader(input), &bytes.Buffer{}, MaxDecodeBufferSize+1)
		require.True(t, errors.Is(err, ErrValueOutOfRange))
	}
}

func Test_DecodeBuffered_Sizes(t *testing.T) {
	data := []byte("The quick brown fox jumps over the lazy dog")
	encoded := EncodeToBytes(data)
	for size := DecodeBufferSize; size <= MaxDecodeBufferSize; size++ {
		out := &bytes.Buffer{}
		require.NoError(t, DecodeBuffered(bytes.NewReader(encoded), out, size))
		require.Equalf(t, data, out.Bytes(), "buffer size %d", size)
	}
}

func Test_RoundTrip(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	for size := 0; size < 100; size++ {
		data := make([]byte, size)
		rnd.Read(data)

		encoded := EncodeToBytes(data)
		require.Equal(t, 0, len(encoded)%SymbolSize)
		require.Equal(t, EncodedLen(size), len(encoded))
		for _, b := range encoded {
			require.True(t, IsValidByte(b), "byte \\x%02x in output", b)
		}

		decoded, err := DecodeBytes(encoded)
		require.NoError(t, err)
		require.Equal(t, data, decoded)
	}
}

func Test_RoundTrip_Large(t *testing.T) {
	data := make([]byte, 1<<16+3)
	rand.New(rand.NewSource(7)).Read(data)

	encoded := &bytes.Buffer{}
	require.NoError(t, Encode(iotestReader{bytes.NewReader(data)}, encoded))

	decoded := &bytes.Buffer{}
	require.NoError(t, Decode(iotestReader{encoded}, decoded))
	require.Equal(t, data, decoded.Bytes())
}

func Test_EncodedLen(t *testing.T) {
	require.Equal(t, 0, EncodedLen(0))
	require.Equal(t, 4, EncodedLen(1))
	require.Equal(t, 6, EncodedLen(2))
	require.Equal(t, 16, EncodedLen(13))
	require.Equal(t, 16, EncodedLen(15))
	require.Equal(t, 20, EncodedLen(16))
}

func Test_EncodedLen_Large(t *testing.T) {
	for _, n := range []int{1<<28 + 1, 1<<30 - 1} {
		bits := int64(n) * 8
		symbols := (bits + Bits - 1) / Bits
		if bits%Bits != 0 {
			symbols++
		}
		require.Equalf(t, symbols*SymbolSize, int64(EncodedLen(n)), "%d bytes", n)
	}
}

func Test_Encode_ReadError(t *testing.T) {
	failure := errors.New("disk on fire")
	err := Encode(io.MultiReader(strings.NewReader("abc"), failingReader{failure}), &bytes.Buffer{})
	require.Equal(t, failure, errors.Cause(err))
}

// iotestReader hides any io.ByteReader implementation, forcing the bufio path
type iotestReader struct {
	r io.Reader
}

func (i iotestReader) Read(p []byte) (int, error) {
	return i.r.Read(p)
}

type failingReader struct {
	err error
}

func (f failingReader) Read(p []byte) (int, error) {
	return 0, f.err
}
