package util

import (
	"os"

	"github.com/bokysan/base32768/internal/base32768"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	// ErrInvalidInput is the exit code when the data to decode is malformed (EX_DATAERR)
	ErrInvalidInput = 65
	ErrGeneric      = 99
)

// ExitCode returns the process exit code for the given error. Error code is unwrapped from `flags.Error`
// object; malformed encoded data gives ErrInvalidInput and anything else ErrGeneric.
func ExitCode(err error) int {
	var flagsError *flags.Error
	if errors.As(err, &flagsError) {
		if flagsError.Type == flags.ErrHelp {
			return 0
		}
		return int(flagsError.Type)
	}
	if errors.Is(err, base32768.ErrInvalidInput) {
		return ErrInvalidInput
	}
	return ErrGeneric
}

// MustErrorNilOrExit will check the provided argument. If it's `nil` it will simply return. If it's
// not `nil`, it will log the error as `log.FatalLevel` and exit immediately with the code from ExitCode.
func MustErrorNilOrExit(err error) {
	if err == nil {
		return
	}

	code := ExitCode(err)
	if code == 0 {
		os.Exit(0)
		return
	}

	log.StandardLogger().WithError(err).Logf(log.FatalLevel, "Error: %+v", err)
	log.Exit(code)
}
