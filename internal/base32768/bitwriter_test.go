package base32768

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

// plainWriter hides the io.ByteWriter implementation of bytes.Buffer
type plainWriter struct {
	buf bytes.Buffer
}

func (p *plainWriter) Write(data []byte) (int, error) {
	return p.buf.Write(data)
}

func newTestBitWriter(bufferSize int) (*BitWriter, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return NewBitWriter(buf, bufferSize), buf
}

func Test_BitWriter_WholeByte(t *testing.T) {
	bw, buf := newTestBitWriter(0)
	require.NoError(t, bw.WriteBits(0xc3, 8))
	require.Equal(t, []byte{0xc3}, buf.Bytes())
}

func Test_BitWriter_PartialByte(t *testing.T) {
	bw, buf := newTestBitWriter(0)
	require.NoError(t, bw.WriteBits(0x03, 4))
	require.Empty(t, buf.Bytes())
	require.NoError(t, bw.WriteBits(0x0c, 4))
	require.Equal(t, []byte{0xc3}, buf.Bytes())
}

func Test_BitWriter_SecondByte(t *testing.T) {
	bw, buf := newTestBitWriter(0)
	require.NoError(t, bw.WriteBits(0xc3, 8))
	require.NoError(t, bw.WriteBits(0xd4, 8))
	require.Equal(t, []byte{0xc3, 0xd4}, buf.Bytes())
}

func Test_BitWriter_ByteContinuation(t *testing.T) {
	bw, buf := newTestBitWriter(0)
	require.NoError(t, bw.WriteBits(0x03, 4))
	require.NoError(t, bw.WriteBits(0x4c, 8))
	require.NoError(t, bw.WriteBits(0x0d, 4))
	require.Equal(t, []byte{0xc3, 0xd4}, buf.Bytes())
}

func Test_BitWriter_MultiByte(t *testing.T) {
	bw, buf := newTestBitWriter(0)
	require.NoError(t, bw.WriteBits(0xd4c3, 16))
	require.Equal(t, []byte{0xc3, 0xd4}, buf.Bytes())
}

func Test_BitWriter_IgnoresHighBits(t *testing.T) {
	bw, buf := newTestBitWriter(0)
	require.NoError(t, bw.WriteBits(0xf3, 4))
	require.NoError(t, bw.WriteBits(0x0c, 4))
	require.Equal(t, []byte{0xc3}, buf.Bytes())
}

func Test_BitWriter_NegativeBufferSize(t *testing.T) {
	bw, buf := newTestBitWriter(-5)
	require.NoError(t, bw.WriteBits(0xc3, 8))
	require.Equal(t, []byte{0xc3}, buf.Bytes())
}

func Test_BitWriter_BufferBits(t *testing.T) {
	bw, buf := newTestBitWriter(16)
	require.NoError(t, bw.WriteBits(0x00c3, 23))
	require.Empty(t, buf.Bytes())
	require.Equal(t, 23, bw.Buffered())
	require.NoError(t, bw.WriteBits(0, 1))
	require.Equal(t, []byte{0xc3}, buf.Bytes())
	require.Equal(t, 16, bw.Buffered())
}

func Test_BitWriter_FlushBuffer(t *testing.T) {
	bw, buf := newTestBitWriter(16)
	require.NoError(t, bw.WriteBits(0xd4c3, 16))
	require.Empty(t, buf.Bytes())
	require.NoError(t, bw.Flush(0))
	require.Equal(t, []byte{0xc3, 0xd4}, buf.Bytes())
}

func Test_BitWriter_FlushEmpty(t *testing.T) {
	bw, buf := newTestBitWriter(16)
	require.NoError(t, bw.Flush(0))
	require.NoError(t, bw.Flush(0))
	require.Empty(t, buf.Bytes())
}

func Test_BitWriter_FlushBufferWithPadding(t *testing.T) {
	bw, buf := newTestBitWriter(16)
	require.NoError(t, bw.WriteBits(0x00c3, 23))
	require.NoError(t, bw.Flush(15))
	require.Equal(t, []byte{0xc3}, buf.Bytes())
	require.Equal(t, 0, bw.Buffered())
}

func Test_BitWriter_FlushTwice(t *testing.T) {
	bw, buf := newTestBitWriter(16)
	require.NoError(t, bw.WriteBits(0x00c3, 23))
	require.NoError(t, bw.Flush(15))
	require.Equal(t, []byte{0xc3}, buf.Bytes())

	err := bw.Flush(8)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrBadPadding))
	require.Equal(t, []byte{0xc3}, buf.Bytes())
}

func Test_BitWriter_FlushWithInvalidPadding(t *testing.T) {
	bw, _ := newTestBitWriter(16)
	require.NoError(t, bw.WriteBits(0x00c3, 23))
	err := bw.Flush(14)
	require.True(t, errors.Is(err, ErrBadPadding))
	require.True(t, errors.Is(err, ErrInvalidInput))
}

func Test_BitWriter_FlushWithBigPadding(t *testing.T) {
	bw, _ := newTestBitWriter(16)
	require.NoError(t, bw.WriteBits(0x00c3, 23))
	require.True(t, errors.Is(bw.Flush(23), ErrBadPadding))
	require.True(t, errors.Is(bw.Flush(-1), ErrBadPadding))
}

func Test_BitWriter_LongBuffer(t *testing.T) {
	bw, buf := newTestBitWriter(28)
	// 63 bits of alternating 0s and 1s
	require.NoError(t, bw.WriteBits(0x2a, 7))
	require.NoError(t, bw.WriteBits(0x5555555, 28)) // holds 35 bits
	require.NoError(t, bw.WriteBits(0x5555555, 28)) // holds 31 bits after a partial flush
	require.NoError(t, bw.WriteBits(0, 1))
	require.NoError(t, bw.Flush(0))
	require.Equal(t, []byte{0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0x2a}, buf.Bytes())
}

func Test_BitWriter_BeyondBufferCapacity(t *testing.T) {
	bw, buf := newTestBitWriter(29)
	err := bw.WriteBits(0x5555555, 28)
	require.True(t, errors.Is(err, ErrBufferOverflow))
	require.Empty(t, buf.Bytes())
	require.Equal(t, 0, bw.Buffered())
}

func Test_BitWriter_InvalidBitCount(t *testing.T) {
	bw, _ := newTestBitWriter(0)
	require.True(t, errors.Is(bw.WriteBits(0, 33), ErrInvalidBitCount))
	require.True(t, errors.Is(bw.WriteBits(0, -1), ErrInvalidBitCount))
}

func Test_BitWriter_NonByteWriter(t *testing.T) {
	out := &plainWriter{}
	bw := NewBitWriter(out, 16)
	require.NoError(t, bw.WriteBits(0xd4c3, 16))
	require.NoError(t, bw.WriteBits(0x00e5, 16))
	require.NoError(t, bw.Flush(0))
	require.Equal(t, []byte{0xc3, 0xd4, 0xe5, 0x00}, out.buf.Bytes())
}

func Test_BitWriter_Sync(t *testing.T) {
	out := &plainWriter{}
	bw := NewBitWriter(out, 0)
	require.NoError(t, bw.WriteBits(0x5c3, 12))
	require.Empty(t, out.buf.Bytes())

	require.NoError(t, bw.Sync())
	require.Equal(t, []byte{0xc3}, out.buf.Bytes())
	require.Equal(t, 4, bw.Buffered())
}
