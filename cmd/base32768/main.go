package main

import (
	"fmt"
	"os"
	"path"

	"github.com/bokysan/base32768/internal/args"
	"github.com/bokysan/base32768/internal/commands/codec"
	"github.com/bokysan/base32768/internal/commands/server"
	"github.com/bokysan/base32768/internal/commands/stats"
	"github.com/bokysan/base32768/internal/commands/version"
	bFlags "github.com/bokysan/base32768/internal/flags"
	"github.com/bokysan/base32768/internal/util"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
)

const (
	// ErrConfigFileDoesNotExist is raised when configuration file cannot be found
	ErrConfigFileDoesNotExist = flags.ErrInvalidTag + 1
	// ErrConflictingModes is raised when both --encode and --decode are given
	ErrConflictingModes = flags.ErrInvalidTag + 2
)

// Base32768 is the main executable
type Base32768 struct {
	parser *flags.Parser
}

// NewBase32768 will create a new instance of Base32768 and initialize the parser
func NewBase32768() *Base32768 {
	executableFilename := os.Args[0]
	executablePath := path.Base(executableFilename)

	b := &Base32768{
		parser: flags.NewNamedParser(executablePath, flags.HelpFlag|flags.PrintErrors),
	}
	b.parser.SubcommandsOptional = true

	b.setupGeneral()
	b.setupVersion()
	b.setupEncode()
	b.setupDecode()
	b.setupStats()
	b.setupServer()

	return b
}

// setupGeneral will configure general options
func (b *Base32768) setupGeneral() {
	if _, err := b.parser.AddGroup("General", "General options", &args.General); err != nil {
		err = errors.WithStack(err)
		util.MustErrorNilOrExit(err)
	}
}

// setupVersion adds the `version` command
func (b *Base32768) setupVersion() {
	cmd := &version.Command{}
	_, err := b.parser.AddCommand(
		"version",
		"Print the version",
		"Print the application version and exit",
		cmd,
	)
	util.MustErrorNilOrExit(err)
}

// setupEncode adds the `encode` command
func (b *Base32768) setupEncode() {
	cmd := codec.NewEncodeCommand()
	_, err := b.parser.AddCommand(
		"encode",
		"Encode binary data",
		"Encode the concatenation of the given files (or standard input) into base32768 text",
		cmd,
	)
	util.MustErrorNilOrExit(err)
}

// setupDecode adds the `decode` command
func (b *Base32768) setupDecode() {
	cmd := codec.NewDecodeCommand()
	_, err := b.parser.AddCommand(
		"decode",
		"Decode base32768 text",
		"Decode base32768 text from the given file (or standard input) back into binary data",
		cmd,
	)
	util.MustErrorNilOrExit(err)
}

// setupStats adds the `stats` command
func (b *Base32768) setupStats() {
	cmd := stats.NewCommand()
	_, err := b.parser.AddCommand(
		"stats",
		"Compare encoders",
		"Encode the input with every known encoder and print the resulting sizes",
		cmd,
	)
	util.MustErrorNilOrExit(err)
}

// setupServer adds the `serve` command
func (b *Base32768) setupServer() {
	cmd := server.NewCommand()
	_, err := b.parser.AddCommand(
		"serve",
		"Run the HTTP service",
		"Run a HTTP server encoding and decoding request bodies",
		cmd,
	)
	util.MustErrorNilOrExit(err)
}

// Run parses the command line and executes the selected command. Without a command, -e or -d stream standard
// input to standard output.
func (b *Base32768) Run(arguments []string) error {
	if _, err := b.parser.ParseArgs(arguments); err != nil {
		return err
	}
	if b.parser.Active != nil {
		return nil
	}

	switch {
	case args.General.Encode && args.General.Decode:
		return &flags.Error{
			Type:    ErrConflictingModes,
			Message: "Only one of --encode and --decode may be given",
		}
	case args.General.Encode:
		return codec.NewEncodeCommand().Execute(nil)
	case args.General.Decode:
		return codec.NewDecodeCommand().Execute(nil)
	}

	b.parser.WriteHelp(os.Stderr)
	return &flags.Error{
		Type:    flags.ErrCommandRequired,
		Message: "Please specify one command of: decode, encode, serve, stats or version, or one of --encode, --decode",
	}
}

// main starts base32768 and reads the configuration file
func main() {

	b := NewBase32768()
	args.General.ConfigurationFile = func(file string) error {
		if _, err := os.Stat(file); os.IsNotExist(err) {
			message := fmt.Sprintf("Configuration file %s does not exist.", file)
			util.MustErrorNilOrExit(&flags.Error{
				Type:    ErrConfigFileDoesNotExist,
				Message: message,
			})
		}

		yamlParser := bFlags.NewYamlParser(b.parser)

		args.General.ConfigurationFilePath = file
		return yamlParser.ParseFile(file)
	}

	util.MustErrorNilOrExit(b.Run(os.Args[1:]))

}
