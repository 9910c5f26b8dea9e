package codec

import (
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
)

// compressReader returns a reader over the zstd compressed content of in. The caller must close it, which also
// stops the compressing goroutine if the reader is abandoned early.
func compressReader(in io.Reader) *io.PipeReader {
	pr, pw := io.Pipe()
	go func() {
		zw, err := zstd.NewWriter(pw, zstd.WithEncoderConcurrency(1))
		if err != nil {
			pw.CloseWithError(errors.WithStack(err))
			return
		}
		if _, err := io.Copy(zw, in); err != nil {
			_ = zw.Close()
			pw.CloseWithError(errors.Wrapf(err, "Could not compress"))
			return
		}
		pw.CloseWithError(errors.WithStack(zw.Close()))
	}()
	return pr
}

// decompressor accepts a zstd stream and writes the decompressed data to its output
type decompressor struct {
	*io.PipeWriter
	done chan error
}

func newDecompressor(out io.Writer) *decompressor {
	pr, pw := io.Pipe()
	d := &decompressor{
		PipeWriter: pw,
		done:       make(chan error, 1),
	}
	go func() {
		zr, err := zstd.NewReader(pr, zstd.WithDecoderConcurrency(1))
		if err != nil {
			err = errors.WithStack(err)
			pr.CloseWithError(err)
			d.done <- err
			return
		}
		defer zr.Close()

		if _, err = io.Copy(out, zr); err != nil {
			err = errors.Wrapf(err, "Could not decompress")
		}
		pr.CloseWithError(err)
		d.done <- err
	}()
	return d
}

// Finish ends the compressed stream, passing err on to the reading side, and waits until all decompressed data
// is written. The first error wins.
func (d *decompressor) Finish(err error) error {
	_ = d.PipeWriter.CloseWithError(err)
	if derr := <-d.done; err == nil {
		return derr
	}
	return err
}
