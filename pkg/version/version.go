// Package version holds build-time version info for hostpage.
// Set via main using Set(), read from anywhere via Get().
package version

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Build information, populated by Set() at startup.
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

// Info is a snapshot of the build information.
type Info struct {
	Version   string
	Commit    string
	BuildDate string
}

// Set stores build-time version info. Call once from main. Empty values keep
// the defaults so unflagged `go build` binaries still report something.
func Set(v, c, d string) {
	if v != "" {
		version = v
	}
	if c != "" {
		commit = c
	}
	if d != "" {
		buildDate = d
	}
}

// Get returns the current build information.
func Get() Info {
	return Info{Version: Version(), Commit: Commit(), BuildDate: BuildDate()}
}

// Version returns the build version string.
func Version() string { return version }

// Commit returns the build commit hash.
func Commit() string { return commit }

// BuildDate returns the build date string.
func BuildDate() string { return buildDate }

// Semver parses the build version, accepting an optional "v" prefix.
func (i Info) Semver() (*semver.Version, error) {
	v, err := semver.NewVersion(strings.TrimSpace(i.Version))
	if err != nil {
		return nil, fmt.Errorf("invalid version %q: %w", i.Version, err)
	}
	return v, nil
}

// IsRelease reports whether the build version is a semver release without a
// prerelease suffix.
func (i Info) IsRelease() bool {
	v, err := i.Semver()
	return err == nil && v.Prerelease() == ""
}

// String formats the info for `hostpage version`.
func (i Info) String() string {
	s := fmt.Sprintf("hostpage %s\nCommit: %s\nBuilt: %s", i.Version, i.Commit, i.BuildDate)
	if !i.IsRelease() {
		s += "\n(development build)"
	}
	return s
}
