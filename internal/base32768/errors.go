package base32768

import (
	"github.com/pkg/errors"
)

// ErrInvalidInput is matched (via errors.Is) by every error caused by malformed encoded data.
var ErrInvalidInput = errors.New("invalid input")

// inputError is a decoding failure. All of them report themselves as ErrInvalidInput.
type inputError string

func (e inputError) Error() string {
	return string(e)
}

func (e inputError) Is(target error) bool {
	return target == ErrInvalidInput
}

const (
	// ErrBadPadding is returned when the final flush would not end on a byte boundary
	ErrBadPadding = inputError("bad padding")
	// ErrInvalidByteValue is returned for a byte that falls inside one of the excluded ranges
	ErrInvalidByteValue = inputError("invalid byte value")
	// ErrNonEvenCharCount is returned when the input ends in the middle of a symbol
	ErrNonEvenCharCount = inputError("non-even char count")
	// ErrInvalidByteSequence is returned when a symbol decodes below the lowest padding value
	ErrInvalidByteSequence = inputError("invalid byte sequence")
	// ErrDataAfterPadding is returned when anything follows the padding symbol
	ErrDataAfterPadding = inputError("data remaining after padding")
)

var (
	ErrInvalidBitCount = errors.New("invalid bit count")
	ErrBufferOverflow  = errors.New("bit buffer would overflow")
	ErrValueOutOfRange = errors.New("value out of range")
)
