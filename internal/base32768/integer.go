package base32768

import (
	"github.com/pkg/errors"
)

const (
	// Bits is the number of data bits carried by a single symbol
	Bits = 15
	// SymbolSize is the number of bytes in a symbol
	SymbolSize = 2

	// MinInteger is the lowest value a symbol can carry. Negative values are padding signals.
	MinInteger = 1 - Bits
	// MaxInteger is the highest value a symbol can carry.
	MaxInteger = 1<<Bits - 1

	radix = 181
	// nbase shifts the symbol range so that MaxInteger is encoded as \xff\xff
	nbase = radix*radix - 1<<Bits
)

// EncodeInteger encodes a value in MinInteger..MaxInteger as a two byte symbol, low digit first.
func EncodeInteger(v int) ([SymbolSize]byte, error) {
	if v < MinInteger || v > MaxInteger {
		return [SymbolSize]byte{}, errors.Wrapf(ErrValueOutOfRange, "integer %d", v)
	}
	return encodeInteger(v), nil
}

func encodeInteger(v int) [SymbolSize]byte {
	// hi is in -1..180, lo in 0..180; both are shifted by one so they fit 0..MaxDigit
	hi, lo := divmod(v+nbase, radix)
	return [SymbolSize]byte{encodeByte(lo + 1), encodeByte(hi + 1)}
}

// DecodeInteger decodes a two byte symbol.
func DecodeInteger(s []byte) (int, error) {
	if len(s) != SymbolSize {
		return 0, errors.Wrapf(ErrNonEvenCharCount, "symbol of %d bytes", len(s))
	}
	lo, err := DecodeByte(s[0])
	if err != nil {
		return 0, err
	}
	hi, err := DecodeByte(s[1])
	if err != nil {
		return 0, err
	}

	result := (hi-1)*radix + (lo - 1) - nbase
	if result < MinInteger {
		return 0, errors.Wrapf(ErrInvalidByteSequence, "\\x%02x\\x%02x", s[0], s[1])
	}
	return result, nil
}

// divmod is floored division: the remainder always has the sign of b
func divmod(a, b int) (int, int) {
	q, r := a/b, a%b
	if r < 0 {
		r += b
		q--
	}
	return q, r
}
