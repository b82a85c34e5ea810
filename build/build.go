// Package build describes the running binary. Release builds embed a JSON
// document with -ldflags:
//
//	go build -ldflags "-X 'github.com/amp-labs/amp-sorting/build.embedded={\"version\":\"1.2.0\"}'" ./cmd/sortbench
//
// Other builds fall back to what the Go toolchain records in the binary.
package build

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"runtime"
	"runtime/debug"
	"strings"
	"sync"
)

const unknown = "(devel)"

// embedded is set at link time.
var embedded string //nolint:gochecknoglobals

// Info contains build metadata.
type Info struct {
	Version      string            `json:"version"`
	GitCommit    string            `json:"git_commit"` //nolint:tagliatelle
	GitDate      string            `json:"git_date"`   //nolint:tagliatelle
	Modified     bool              `json:"modified"`
	GoVersion    string            `json:"go_version"` //nolint:tagliatelle
	Dependencies map[string]string `json:"dependencies"`
}

// Parse deserializes a JSON string into build Info.
// Returns (nil, false) if the input is empty, "{}", or fails to parse.
func Parse(js string) (*Info, bool) {
	if len(js) == 0 || js == "{}" {
		return nil, false
	}

	var info Info

	if err := json.Unmarshal([]byte(js), &info); err != nil {
		slog.Warn("Failed to parse build info from JSON",
			"data", js,
			"error", err)

		return nil, false
	}

	return &info, true
}

// FromBuildInfo converts what the toolchain recorded into Info.
func FromBuildInfo(bi *debug.BuildInfo) *Info {
	info := &Info{
		Version:      bi.Main.Version,
		GoVersion:    bi.GoVersion,
		Dependencies: make(map[string]string, len(bi.Deps)),
	}

	for _, setting := range bi.Settings {
		switch setting.Key {
		case "vcs.revision":
			info.GitCommit = setting.Value
		case "vcs.time":
			info.GitDate = setting.Value
		case "vcs.modified":
			info.Modified = setting.Value == "true"
		}
	}

	for _, dep := range bi.Deps {
		if dep.Replace != nil {
			dep = dep.Replace
		}

		info.Dependencies[dep.Path] = dep.Version
	}

	return info
}

// Current returns the embedded Info if there is one, otherwise the
// toolchain's record, otherwise a stub carrying only the Go version.
var Current = sync.OnceValue(func() *Info { //nolint:gochecknoglobals
	if info, ok := Parse(embedded); ok {
		return info
	}

	if bi, ok := debug.ReadBuildInfo(); ok {
		return FromBuildInfo(bi)
	}

	return &Info{Version: unknown, GoVersion: runtime.Version()}
})

// ShortVersion returns Version, or unknown when it is empty.
func (i *Info) ShortVersion() string {
	if i.Version == "" {
		return unknown
	}

	return i.Version
}

// String renders a one-line description such as
// "v1.2.0 (3f2c1ab, go1.25.0)".
func (i *Info) String() string {
	details := []string{}

	if i.GitCommit != "" {
		commit := i.GitCommit
		if len(commit) > 7 { //nolint:mnd
			commit = commit[:7]
		}

		if i.Modified {
			commit += "-dirty"
		}

		details = append(details, commit)
	}

	if i.GoVersion != "" {
		details = append(details, i.GoVersion)
	}

	if len(details) == 0 {
		return i.ShortVersion()
	}

	return fmt.Sprintf("%s (%s)", i.ShortVersion(), strings.Join(details, ", "))
}
