package version

const UnknownVersion = "unknown"

// FormatVersion is the version of the encoded format. Output of different format versions is not compatible.
const FormatVersion = "v1"

// Set with -ldflags "-X github.com/bokysan/base32768/internal/version.<Name>=<value>"
var (
	GitCommit  string // commit hash
	GitBranch  string
	GitTag     string // exact tag of the commit, if any
	GitSummary string // git describe --tags --dirty --always
	GitState   string // clean or dirty
	BuildDate  string // RFC3339, UTC
	Version    string // contents of ./VERSION
	GoVersion  string
)

// AppVersion returns the most specific version information available
func AppVersion() string {
	if GitTag != "" {
		return GitTag
	} else if Version != "" {
		return Version
	}

	return UnknownVersion
}
