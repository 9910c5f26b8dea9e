package base32768

import (
	"bufio"
	"io"

	"github.com/pkg/errors"
)

// BitWriter packs bit fields into bytes. Up to bufferSize bits are held back before whole bytes are written
// out, so that the final Flush can still drop padding bits from the tail of the stream.
type BitWriter struct {
	out        io.ByteWriter
	buffered   *bufio.Writer // set if the target is not an io.ByteWriter
	bufferSize int
	value      uint64
	count      int
}

// NewBitWriter creates a new writer. Negative buffer sizes are treated as zero.
func NewBitWriter(w io.Writer, bufferSize int) *BitWriter {
	if bufferSize < 0 {
		bufferSize = 0
	}
	bw := &BitWriter{
		bufferSize: bufferSize,
	}
	if out, ok := w.(io.ByteWriter); ok {
		bw.out = out
	} else {
		bw.buffered = bufio.NewWriter(w)
		bw.out = bw.buffered
	}
	return bw
}

// Buffered returns the number of bits waiting to be written.
func (w *BitWriter) Buffered() int {
	return w.count
}

// WriteBits appends the n low bits of value (0 <= n <= 32).
func (w *BitWriter) WriteBits(value uint32, n int) error {
	if n < 0 || n > 32 {
		return errors.Wrapf(ErrInvalidBitCount, "cannot write %d bits", n)
	}
	if w.bufferSize+n+8 > 64 {
		return errors.Wrapf(ErrBufferOverflow, "buffer of %d bits cannot take %d more", w.bufferSize, n)
	}

	w.value |= (uint64(value) & (uint64(1)<<uint(n) - 1)) << uint(w.count)
	w.count += n
	return w.emit(w.bufferSize)
}

// Flush drops the last pad bits written and writes out everything else. The remainder must be a whole number
// of bytes. Flush(0) with nothing buffered does nothing; afterwards the writer is empty again.
func (w *BitWriter) Flush(pad int) error {
	if pad == 0 && w.count == 0 {
		return w.flushOutput()
	}
	if pad < 0 || pad >= w.count || (w.count-pad)%8 != 0 {
		return errors.Wrapf(ErrBadPadding, "cannot drop %d of %d buffered bits", pad, w.count)
	}

	w.count -= pad
	if err := w.emit(0); err != nil {
		return err
	}
	w.value = 0
	w.count = 0
	return w.flushOutput()
}

// emit writes whole bytes for as long as more than keep bits are buffered
func (w *BitWriter) emit(keep int) error {
	for w.count >= keep+8 {
		if err := w.out.WriteByte(byte(w.value)); err != nil {
			return errors.WithStack(err)
		}
		w.value >>= 8
		w.count -= 8
	}
	return nil
}

// Sync writes out the bytes already emitted but still held by an internal buffer. Buffered bits are kept.
func (w *BitWriter) Sync() error {
	return w.flushOutput()
}

func (w *BitWriter) flushOutput() error {
	if w.buffered == nil {
		return nil
	}
	return errors.WithStack(w.buffered.Flush())
}
