package base32768

import (
	"bufio"
	"io"

	"github.com/pkg/errors"
)

// BitReader reads arbitrary-width bit fields from a byte stream. Bits are consumed from the least significant
// end of every byte, and earlier bits end up in the lower positions of the returned value.
type BitReader struct {
	in    io.ByteReader
	value uint32 // unread bits of the current byte
	count int    // number of unread bits in value
}

// NewBitReader creates a new reader. If r does not implement io.ByteReader it is wrapped into a bufio.Reader.
func NewBitReader(r io.Reader) *BitReader {
	in, ok := r.(io.ByteReader)
	if !ok {
		in = bufio.NewReader(r)
	}
	return &BitReader{in: in}
}

// ReadBits reads up to n bits (0 <= n <= 32). count is the number of bits actually read; it is smaller than n
// only when the stream ran out, and zero once the stream is exhausted. End of stream is not an error.
func (r *BitReader) ReadBits(n int) (value uint32, count int, err error) {
	if n < 0 || n > 32 {
		return 0, 0, errors.Wrapf(ErrInvalidBitCount, "cannot read %d bits", n)
	}

	for n > 0 {
		if r.count == 0 {
			b, err := r.in.ReadByte()
			if err == io.EOF {
				break
			} else if err != nil {
				return value, count, errors.WithStack(err)
			}
			r.value = uint32(b)
			r.count = 8
		}

		c := n
		if c > r.count {
			c = r.count
		}
		mask := uint32(1)<<uint(c) - 1
		value |= (r.value & mask) << uint(count)
		count += c
		n -= c
		r.value >>= uint(c)
		r.count -= c
	}

	return value, count, nil
}
