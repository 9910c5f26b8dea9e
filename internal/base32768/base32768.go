// Package base32768 implements a binary-to-text encoding which packs 15 bits of data into every two bytes of
// output. Output bytes never fall into the control ranges, nor are they '+', '=' or the soft hyphen.
//
// Every symbol is a two-digit base-181 number, low digit first. Symbols with values 0..0x7fff carry data.
// If the input does not end on a 15-bit boundary, the last data symbol is followed by a padding symbol with
// a negative value -n, which tells the decoder to drop the n high bits of the last data symbol.
package base32768

import (
	"bufio"
	"bytes"
	"io"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// DecodeBufferSize is the number of bits the decoder holds back before writing them out. It must be at least
// Bits, so that the padding of the last symbol can still be dropped.
const DecodeBufferSize = Bits

// MaxDecodeBufferSize is the largest buffer that still leaves room for a symbol and a byte in 64 bits.
const MaxDecodeBufferSize = 64 - Bits - 8

// Encode reads r until EOF and writes the encoded symbols to w.
func Encode(r io.Reader, w io.Writer) (err error) {
	reader := NewBitReader(r)
	out := bufio.NewWriter(w)
	defer func() {
		if flushErr := out.Flush(); err == nil {
			err = errors.WithStack(flushErr)
		}
	}()

	symbols := 0
	for {
		val, count, err := reader.ReadBits(Bits)
		if err != nil {
			return err
		}

		if count > 0 {
			if err := writeSymbol(out, int(val)); err != nil {
				return err
			}
			symbols++
		}
		if count > 0 && count < Bits {
			if err := writeSymbol(out, count-Bits); err != nil {
				return err
			}
			log.Tracef("[Encode] %d data symbols, %d bits of padding", symbols, Bits-count)
			return nil
		}
		if count < Bits {
			log.Tracef("[Encode] %d data symbols, no padding", symbols)
			return nil
		}
	}
}

func writeSymbol(out io.Writer, v int) error {
	s := encodeInteger(v)
	if _, err := out.Write(s[:]); err != nil {
		return errors.WithStack(err)
	}
	return nil
}

// Decode reads encoded symbols from r until EOF and writes the decoded data to w.
func Decode(r io.Reader, w io.Writer) error {
	return DecodeBuffered(r, w, DecodeBufferSize)
}

// DecodeBuffered is Decode with a custom bit buffer size, between DecodeBufferSize and MaxDecodeBufferSize.
// Bytes decoded before an error stay written.
func DecodeBuffered(r io.Reader, w io.Writer, bufferSize int) (err error) {
	if bufferSize < Bits {
		return errors.Wrapf(ErrValueOutOfRange, "buffer of %d bits cannot hold a symbol", bufferSize)
	}
	if bufferSize > MaxDecodeBufferSize {
		return errors.Wrapf(ErrValueOutOfRange, "buffer of %d bits leaves no room for a symbol", bufferSize)
	}

	in, ok := r.(io.ByteReader)
	if !ok {
		in = bufio.NewReader(r)
	}
	writer := NewBitWriter(w, bufferSize)
	defer func() {
		if err == nil {
			return
		}
		if syncErr := writer.Sync(); syncErr != nil {
			log.WithError(syncErr).Debugf("[Decode] Could not write partial output: %v", syncErr)
		}
	}()

	var symbol [SymbolSize]byte
	symbols := 0
	for {
		n, err := readSymbol(in, symbol[:])
		if err != nil {
			return err
		}
		if n == 0 {
			log.Tracef("[Decode] %d data symbols, no padding", symbols)
			return writer.Flush(0)
		}

		val, err := DecodeInteger(symbol[:n])
		if err != nil {
			return err
		}
		if val >= 0 {
			if err := writer.WriteBits(uint32(val), Bits); err != nil {
				return err
			}
			symbols++
			continue
		}

		log.Tracef("[Decode] %d data symbols, %d bits of padding", symbols, -val)
		if err := writer.Flush(-val); err != nil {
			return err
		}
		if _, err := in.ReadByte(); err == nil {
			return errors.WithStack(ErrDataAfterPadding)
		} else if err != io.EOF {
			return errors.WithStack(err)
		}
		return nil
	}
}

// readSymbol fills s and returns the number of bytes read. Zero means a clean end of the stream.
func readSymbol(in io.ByteReader, s []byte) (int, error) {
	for i := range s {
		b, err := in.ReadByte()
		if err == io.EOF {
			return i, nil
		} else if err != nil {
			return i, errors.WithStack(err)
		}
		s[i] = b
	}
	return len(s), nil
}

// EncodedLen returns the length of the encoding of n bytes of data.
func EncodedLen(n int) int {
	// every Bits bytes make exactly 8 symbols; only the remainder is counted in bits, so n*8 cannot overflow
	bits := n % Bits * 8
	symbols := n/Bits*8 + (bits+Bits-1)/Bits
	if bits%Bits != 0 {
		symbols++
	}
	return symbols * SymbolSize
}

// EncodeToBytes encodes src in memory.
func EncodeToBytes(src []byte) []byte {
	buf := bytes.NewBuffer(make([]byte, 0, EncodedLen(len(src))))
	// reading from and writing to memory cannot fail
	_ = Encode(bytes.NewReader(src), buf)
	return buf.Bytes()
}

// DecodeBytes decodes src in memory.
func DecodeBytes(src []byte) ([]byte, error) {
	buf := bytes.NewBuffer(make([]byte, 0, len(src)/SymbolSize*Bits/8))
	if err := Decode(bytes.NewReader(src), buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
