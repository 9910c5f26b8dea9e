package enc

import (
	"strings"

	"github.com/pkg/errors"
)

// Default is the encoder used when none is requested explicitly
var Default Encoder = &Base32768Encoder{}

// Encoders lists all known encoders, the default first
var Encoders = []Encoder{
	Default,
	&Base91Encoder{},
	&Base128Encoder{},
	&RawEncoder{},
}

// ErrUnknownEncoder is returned by Find if no encoder matches
var ErrUnknownEncoder = errors.New("unknown encoder")

// Find looks up an encoder by its name (case-insensitive) or its one-letter code. An empty name returns Default.
func Find(name string) (Encoder, error) {
	if name == "" {
		return Default, nil
	}
	for _, e := range Encoders {
		if strings.EqualFold(e.Name(), name) || (len(name) == 1 && name[0] == e.Code()) {
			return e, nil
		}
	}
	return nil, errors.Wrapf(ErrUnknownEncoder, "%q", name)
}
