package enc

// Encoder is a binary-to-text encoding working on whole buffers
type Encoder interface {
	// Name is the user-friendly name of this encoder
	Name() string
	// Code represents the short (one-letter) code for the encoder
	Code() byte

	// Encode will take an array of bytes and encode it using this encoder
	Encode([]byte) []byte

	// Decode is the reverse process of encoding
	Decode([]byte) ([]byte, error)

	// Ratio is the (approximate) number of output bytes per input byte
	Ratio() float64
}
