package codec

import (
	"io"

	"github.com/bokysan/base32768/internal/base32768"
	"github.com/bokysan/base32768/internal/logging"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// DecodeCommand decodes a single encoded stream
type DecodeCommand struct {
	Output     string `yaml:"output"      short:"o" long:"output"      env:"OUTPUT"      description:"Write the decoded data to this file instead of the standard output"`
	BufferBits int    `yaml:"buffer-bits" short:"b" long:"buffer-bits" env:"BUFFER_BITS" description:"Number of bits held back before being written out (15-41)" default:"15"`
	Zstd       bool   `yaml:"zstd"        short:"z" long:"zstd"        env:"ZSTD"        description:"Decompress the decoded data with zstd"`

	Args struct {
		File string `positional-arg-name:"FILE" description:"File to decode. Standard input is read if not given or for '-'."`
	} `positional-args:"true" yaml:"-"`
}

func NewDecodeCommand() *DecodeCommand {
	return &DecodeCommand{
		BufferBits: base32768.DecodeBufferSize,
	}
}

func (c *DecodeCommand) String() string {
	return "Decode"
}

// Run decodes everything from in into out. Data decoded before an error is found is not taken back, unless
// it is still held by the zstd decompressor.
func (c *DecodeCommand) Run(in io.Reader, out io.Writer) error {
	if c.Zstd {
		d := newDecompressor(out)
		return d.Finish(c.decode(in, d))
	}
	return c.decode(in, out)
}

func (c *DecodeCommand) decode(in io.Reader, out io.Writer) error {
	if err := base32768.DecodeBuffered(in, out, c.BufferBits); err != nil {
		return errors.Wrapf(err, "Could not decode")
	}
	return nil
}

//noinspection GoUnusedParameter
func (c *DecodeCommand) Execute(args []string) error {
	logging.SetupLogging()

	var files []string
	if c.Args.File != "" {
		files = []string{c.Args.File}
	}
	log.Debugf("[Decode] Input: %v, output: %v, buffer: %v bits, zstd: %v", files, c.Output, c.BufferBits, c.Zstd)
	return run(files, c.Output, c.Run)
}
