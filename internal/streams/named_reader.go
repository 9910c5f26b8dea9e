package streams

import (
	"io"
	"sync"

	"github.com/pkg/errors"
)

// NamedReader implements the io.ReadCloser interface as well as fmt.Stringer. Read errors are wrapped with the
// name of the stream, so the caller knows which of several inputs failed.
// It also makes sure that `Close()` can be called safely multiple times. Calling `Close()` on a closed object
// will simply succeed without an error.
type NamedReader struct {
	wrapped io.ReadCloser
	name    string

	closed bool
	lock   sync.Mutex
}

func NewNamedReader(wrapped io.ReadCloser, name string) *NamedReader {
	return &NamedReader{
		wrapped: wrapped,
		name:    name,
	}
}

func (ns *NamedReader) Read(p []byte) (int, error) {
	n, err := ns.wrapped.Read(p)
	if err != nil && err != io.EOF {
		err = errors.Wrapf(err, "Could not read %v", ns.name)
	}
	return n, err
}

func (ns *NamedReader) Close() error {
	ns.lock.Lock()
	defer ns.lock.Unlock()
	if ns.closed {
		return nil
	}
	ns.closed = true
	return ns.wrapped.Close()
}

func (ns *NamedReader) String() string {
	return ns.name
}

func (ns *NamedReader) Unwrap() io.ReadCloser {
	return ns.wrapped
}
