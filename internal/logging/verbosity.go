package logging

import (
	"strings"

	log "github.com/sirupsen/logrus"
)

// SetVerbosity defines the verbosity level of the application. Without any flags only warnings and errors are
// shown, as the tool is mostly used in pipes. Every -v raises the level by one, up to trace.
func SetVerbosity(v []bool) {
	verbosity := log.WarnLevel + log.Level(len(v))
	if verbosity > log.TraceLevel {
		verbosity = log.TraceLevel
	}
	log.SetLevel(verbosity)
}

// VerbosityName returns the current log level in upper case, e.g. WARNING or DEBUG
func VerbosityName() string {
	return strings.ToUpper(log.GetLevel().String())
}
