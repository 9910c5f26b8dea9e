package stats

import (
	"bytes"
	"fmt"
	"io"
	"io/ioutil"

	"github.com/bokysan/base32768/internal/commands/codec"
	"github.com/bokysan/base32768/internal/logging"
	"github.com/bokysan/base32768/internal/util/enc"
	"github.com/hashicorp/go-multierror"
	"github.com/k0kubun/go-ansi"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	Bold     = "\x1b[1m"
	Reset    = "\x1b[0m"
	DarkGray = "\x1b[90m"
	White    = "\x1b[97m"
	Red      = "\x1b[31m"
)

// ErrRoundTrip is reported when an encoder does not give back the data it was handed
var ErrRoundTrip = errors.New("decoded data differs from the input")

// Command compares the size of the input encoded with every known encoder
type Command struct {
	Args struct {
		Files []string `positional-arg-name:"FILE" description:"Files to measure, in order. Standard input is read if none are given or for '-'."`
	} `positional-args:"true" yaml:"-"`

	// Output receives the table, os.Stdout if nil
	Output io.Writer `no-flag:"true" yaml:"-"`
}

// Row holds the results of a single encoder
type Row struct {
	Encoder enc.Encoder
	Size    int
	Ratio   float64
	Err     error
}

func NewCommand() *Command {
	return &Command{}
}

func (c *Command) String() string {
	return "Stats"
}

// Collect encodes and decodes data with every registered encoder. Encoders which fail the round trip still get
// their row, the failures are also returned together.
func Collect(data []byte) ([]Row, error) {
	var errs error
	rows := make([]Row, 0, len(enc.Encoders))
	for _, e := range enc.Encoders {
		encoded := e.Encode(data)
		row := Row{
			Encoder: e,
			Size:    len(encoded),
		}
		if len(data) > 0 {
			row.Ratio = float64(len(encoded)) / float64(len(data))
		}

		decoded, err := e.Decode(encoded)
		if err != nil {
			row.Err = errors.Wrapf(err, "%v", e.Name())
		} else if !bytes.Equal(decoded, data) {
			row.Err = errors.Wrapf(ErrRoundTrip, "%v", e.Name())
		}
		if row.Err != nil {
			errs = multierror.Append(errs, row.Err)
		}
		log.Tracef("[Stats] %v: %d -> %d bytes", e.Name(), len(data), row.Size)
		rows = append(rows, row)
	}
	return rows, errs
}

// Print writes the rows as a table
func Print(out io.Writer, size int, rows []Row) {
	_, _ = fmt.Fprintf(out, Bold+" %-10s %4s %10s %8s %8s"+Reset+"\n", "Encoder", "Code", "Bytes", "Ratio", "Nominal")
	_, _ = fmt.Fprintf(out, DarkGray+" %-10s %4s %10d %8s %8s"+Reset+"\n", "input", "", size, "", "")
	for _, r := range rows {
		color := White
		if r.Err != nil {
			color = Red
		}
		_, _ = fmt.Fprintf(out, color+" %-10s %4s %10d %8.4f %8.4f"+Reset+"\n",
			r.Encoder.Name(), string(r.Encoder.Code()), r.Size, r.Ratio, r.Encoder.Ratio())
	}
}

//noinspection GoUnusedParameter
func (c *Command) Execute(args []string) error {
	logging.SetupLogging()

	in, closer, err := codec.OpenInputs(c.Args.Files)
	if err != nil {
		return err
	}
	defer func() {
		if err := closer.Close(); err != nil {
			log.WithError(err).Warnf("Could not close inputs: %v", err)
		}
	}()

	data, err := ioutil.ReadAll(in)
	if err != nil {
		return errors.Wrapf(err, "Could not read input")
	}

	rows, errs := Collect(data)
	out := c.Output
	if out == nil {
		out = ansi.NewAnsiStdout()
	}
	Print(out, len(data), rows)
	return errs
}
