// Package version exposes build metadata injected through -ldflags.
package version

import (
	"fmt"
	"runtime"
	"strings"
	"time"
)

// Overridden at build time with -ldflags "-X github.com/kedare/plaza/internal/version.Version=...".
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
	BuildUser = "unknown"
	BuildHost = "unknown"
	BuildArch = ""
)

// Info contains metadata about the compiled binary.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildDate string `json:"build_date"`
	BuildUser string `json:"build_user"`
	BuildHost string `json:"build_host"`
	BuildArch string `json:"build_arch"`
	GoVersion string `json:"go_version"`
}

// Get returns build metadata with defaults filled in.
func Get() Info {
	arch := strings.TrimSpace(BuildArch)
	if arch == "" {
		arch = runtime.GOOS + "/" + runtime.GOARCH
	}

	return Info{
		Version:   fallback(Version, "dev"),
		Commit:    fallback(Commit, "unknown"),
		BuildDate: fallback(BuildDate, "unknown"),
		BuildUser: fallback(BuildUser, "unknown"),
		BuildHost: fallback(BuildHost, "unknown"),
		BuildArch: arch,
		GoVersion: runtime.Version(),
	}
}

// String is the one-line form used by --version.
func (i Info) String() string {
	return fmt.Sprintf("plaza %s (%s, %s)", i.Version, i.Commit, i.BuildArch)
}

// RelativeTime describes how long ago the binary was built, or "" when the
// build date is not an RFC 3339 timestamp.
func (i Info) RelativeTime() string {
	return relativeTo(i.BuildDate, time.Now())
}

func relativeTo(date string, now time.Time) string {
	built, err := time.Parse(time.RFC3339, strings.TrimSpace(date))
	if err != nil {
		return ""
	}

	d := now.Sub(built)

	switch {
	case d < 0:
		return ""
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return plural(int(d/time.Minute), "minute")
	case d < 24*time.Hour:
		return plural(int(d/time.Hour), "hour")
	default:
		return plural(int(d/(24*time.Hour)), "day")
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit + " ago"
	}

	return fmt.Sprintf("%d %ss ago", n, unit)
}

func fallback(value, defaultValue string) string {
	if strings.TrimSpace(value) == "" {
		return defaultValue
	}

	return value
}
