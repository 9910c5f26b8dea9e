package base32768

import (
	"github.com/pkg/errors"
)

// MaxDigit is the largest value EncodeByte accepts.
const MaxDigit = 181

type exclusion struct {
	threshold int
	skip      int
}

// exclusions lists the byte ranges never written to the output, in ascending order
var exclusions = [...]exclusion{
	{0, 37},   // control characters, space and !"#$
	{43, 1},   // +
	{61, 1},   // =
	{127, 34}, // DEL and the next 33 values
	{173, 1},  // soft hyphen
}

// EncodeByte maps a digit in 0..MaxDigit to its output byte.
func EncodeByte(v int) (byte, error) {
	if v < 0 || v > MaxDigit {
		return 0, errors.Wrapf(ErrValueOutOfRange, "digit %d", v)
	}
	return encodeByte(v), nil
}

func encodeByte(v int) byte {
	for _, e := range exclusions {
		if v >= e.threshold {
			v += e.skip
		}
	}
	return byte(v)
}

// DecodeByte maps an output byte back to its digit.
func DecodeByte(b byte) (int, error) {
	v := int(b)
	for i := len(exclusions) - 1; i >= 0; i-- {
		e := exclusions[i]
		if v >= e.threshold+e.skip {
			v -= e.skip
		} else if v >= e.threshold {
			return 0, errors.Wrapf(ErrInvalidByteValue, "\\x%02x", b)
		}
	}
	return v, nil
}

// IsValidByte reports whether b can appear in encoded output.
func IsValidByte(b byte) bool {
	_, err := DecodeByte(b)
	return err == nil
}
