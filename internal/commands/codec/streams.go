package codec

import (
	"io"
	"io/ioutil"
	"os"

	"github.com/bokysan/base32768/internal/streams"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Stdin and Stdout are the streams used when no file is given
var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
)

type closers []io.Closer

func (c closers) Close() error {
	var errs error
	for _, cl := range c {
		if err := cl.Close(); err != nil {
			errs = multierror.Append(errs, errors.WithStack(err))
		}
	}
	return errs
}

// OpenInputs returns a reader over the concatenation of all files. No files, or a single dash, mean standard input.
func OpenInputs(files []string) (io.Reader, io.Closer, error) {
	if len(files) == 0 {
		return Stdin, closers{}, nil
	}

	readers := make([]io.Reader, 0, len(files))
	opened := make(closers, 0, len(files))
	for _, name := range files {
		if name == "-" {
			readers = append(readers, streams.NewNamedReader(ioutil.NopCloser(Stdin), "stdin"))
			continue
		}
		f, err := os.Open(name)
		if err != nil {
			if closeErr := opened.Close(); closeErr != nil {
				log.WithError(closeErr).Warnf("Could not close inputs: %v", closeErr)
			}
			return nil, nil, errors.Wrapf(err, "Could not open %v", name)
		}
		log.Debugf("Reading from %v", name)
		r := streams.NewNamedReader(f, name)
		readers = append(readers, r)
		opened = append(opened, r)
	}
	return io.MultiReader(readers...), opened, nil
}

// OpenOutput creates (or truncates) the given file. An empty name or a dash mean standard output.
func OpenOutput(name string) (io.Writer, io.Closer, error) {
	if name == "" || name == "-" {
		return Stdout, closers{}, nil
	}
	f, err := os.Create(name)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "Could not create %v", name)
	}
	log.Debugf("Writing to %v", name)
	return f, closers{f}, nil
}

// run opens the streams, hands them to fn and closes everything afterwards, collecting all errors
func run(files []string, output string, fn func(io.Reader, io.Writer) error) error {
	in, inCloser, err := OpenInputs(files)
	if err != nil {
		return err
	}
	var errs error

	out, outCloser, err := OpenOutput(output)
	if err != nil {
		errs = multierror.Append(errs, err)
	} else {
		if err := fn(in, out); err != nil {
			errs = multierror.Append(errs, err)
		}
		if err := outCloser.Close(); err != nil {
			errs = multierror.Append(errs, err)
		}
	}

	if err := inCloser.Close(); err != nil {
		errs = multierror.Append(errs, err)
	}
	return single(errs)
}

// single unwraps a multierror holding just one error, so the caller still sees the original
func single(err error) error {
	if merr, ok := err.(*multierror.Error); ok && len(merr.Errors) == 1 {
		return merr.Errors[0]
	}
	return err
}
