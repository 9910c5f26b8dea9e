package codec

import (
	"io"

	"github.com/bokysan/base32768/internal/base32768"
	"github.com/bokysan/base32768/internal/logging"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// EncodeCommand encodes the concatenation of its input files
type EncodeCommand struct {
	Output string `yaml:"output" short:"o" long:"output" env:"OUTPUT" description:"Write the encoded data to this file instead of the standard output"`
	Zstd   bool   `yaml:"zstd"   short:"z" long:"zstd"   env:"ZSTD"   description:"Compress the data with zstd before encoding"`

	Args struct {
		Files []string `positional-arg-name:"FILE" description:"Files to encode, in order. Standard input is read if none are given or for '-'."`
	} `positional-args:"true" yaml:"-"`
}

func NewEncodeCommand() *EncodeCommand {
	return &EncodeCommand{}
}

func (c *EncodeCommand) String() string {
	return "Encode"
}

// Run encodes everything from in into out.
func (c *EncodeCommand) Run(in io.Reader, out io.Writer) error {
	if c.Zstd {
		compressed := compressReader(in)
		defer func() {
			_ = compressed.Close()
		}()
		in = compressed
	}
	if err := base32768.Encode(in, out); err != nil {
		return errors.Wrapf(err, "Could not encode")
	}
	return nil
}

//noinspection GoUnusedParameter
func (c *EncodeCommand) Execute(args []string) error {
	logging.SetupLogging()
	log.Debugf("[Encode] Inputs: %v, output: %v, zstd: %v", c.Args.Files, c.Output, c.Zstd)
	return run(c.Args.Files, c.Output, c.Run)
}
