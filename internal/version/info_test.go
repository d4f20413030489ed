package version

import (
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGetUsesFallbacks(t *testing.T) {
	orig := []string{Version, Commit, BuildDate, BuildUser, BuildHost, BuildArch}
	Version, Commit, BuildDate, BuildUser, BuildHost, BuildArch = "", "", "", "", "", ""
	t.Cleanup(func() {
		Version, Commit, BuildDate, BuildUser, BuildHost, BuildArch = orig[0], orig[1], orig[2], orig[3], orig[4], orig[5]
	})

	info := Get()

	require.Equal(t, "dev", info.Version)
	require.Equal(t, "unknown", info.Commit)
	require.Equal(t, "unknown", info.BuildDate)
	require.Equal(t, "unknown", info.BuildUser)
	require.Equal(t, "unknown", info.BuildHost)
	require.Equal(t, runtime.GOOS+"/"+runtime.GOARCH, info.BuildArch)
	require.Equal(t, runtime.Version(), info.GoVersion)
}

func TestGetRespectsProvidedValues(t *testing.T) {
	orig := []string{Version, Commit, BuildDate, BuildUser, BuildHost, BuildArch}
	Version, Commit, BuildDate, BuildUser, BuildHost, BuildArch = "1.2.3", "abcd123", "2025-01-01", "tester", "host", "custom/arch"
	t.Cleanup(func() {
		Version, Commit, BuildDate, BuildUser, BuildHost, BuildArch = orig[0], orig[1], orig[2], orig[3], orig[4], orig[5]
	})

	info := Get()

	require.Equal(t, "1.2.3", info.Version)
	require.Equal(t, "abcd123", info.Commit)
	require.Equal(t, "2025-01-01", info.BuildDate)
	require.Equal(t, "tester", info.BuildUser)
	require.Equal(t, "host", info.BuildHost)
	require.Equal(t, "custom/arch", info.BuildArch)
}

func TestFallback(t *testing.T) {
	require.Equal(t, "default", fallback("", "default"))
	require.Equal(t, "value", fallback(" value ", "default"))
}

func TestRelativeTo(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		date string
		want string
	}{
		{name: "unparseable", date: "unknown", want: ""},
		{name: "future", date: "2026-03-11T00:00:00Z", want: ""},
		{name: "seconds", date: "2026-03-10T11:59:30Z", want: "just now"},
		{name: "one_minute", date: "2026-03-10T11:59:00Z", want: "1 minute ago"},
		{name: "hours", date: "2026-03-10T09:00:00Z", want: "3 hours ago"},
		{name: "days", date: "2026-03-01T12:00:00Z", want: "9 days ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, relativeTo(tt.date, now))
		})
	}
}

func TestInfoString(t *testing.T) {
	info := Info{Version: "1.0.0", Commit: "abc", BuildArch: "linux/amd64"}
	require.Equal(t, "plaza 1.0.0 (abc, linux/amd64)", info.String())
}
