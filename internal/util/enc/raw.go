package enc

import "fmt"

// -------------------------------------------------------

// RawEncoder does not do any translation whatsoever. Useful as a baseline.
type RawEncoder struct {
}

func (b *RawEncoder) Name() string {
	return "Raw"
}

func (b *RawEncoder) String() string {
	return fmt.Sprintf("%v(%v)", b.Name(), string(b.Code()))
}

func (b *RawEncoder) Code() byte {
	return 'R'
}

func (b *RawEncoder) Encode(data []byte) []byte {
	res := make([]byte, len(data))
	copy(res, data)
	return res
}

func (b *RawEncoder) Decode(data []byte) ([]byte, error) {
	res := make([]byte, len(data))
	copy(res, data)
	return res, nil
}

func (b *RawEncoder) Ratio() float64 {
	return 1
}
