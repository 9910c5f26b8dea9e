package enc

import (
	"fmt"

	"github.com/bokysan/base32768/internal/base32768"
)

// -------------------------------------------------------

// Base32768Encoder encodes 15 bits into 2 characters, leaving out control characters, '+', '=' and the soft
// hyphen. Every 15 bytes get encoded into 16 octets.
type Base32768Encoder struct {
}

func (b *Base32768Encoder) Name() string {
	return "Base32768"
}

func (b *Base32768Encoder) String() string {
	return fmt.Sprintf("%v(%v)", b.Name(), string(b.Code()))
}

func (b *Base32768Encoder) Code() byte {
	return 'K'
}

func (b *Base32768Encoder) Encode(data []byte) []byte {
	return base32768.EncodeToBytes(data)
}

func (b *Base32768Encoder) Decode(data []byte) ([]byte, error) {
	return base32768.DecodeBytes(data)
}

func (b *Base32768Encoder) Ratio() float64 {
	return 16.0 / 15.0
}
