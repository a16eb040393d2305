package version

import (
	"fmt"
	"runtime/debug"
	"strings"
	"time"
)

var (
	// These variables are set at build time using -ldflags
	Version   = "dev"
	GitCommit = ""
	GitBranch = ""
	BuildTime = ""
)

// shortCommitLen is the length commits are cut to in Info.
const shortCommitLen = 7

// readBuildInfo is replaced in tests.
var readBuildInfo = debug.ReadBuildInfo

// Info describes the running build.
type Info struct {
	Version   string    `json:"version" yaml:"version"`
	GitCommit string    `json:"git_commit,omitempty" yaml:"git_commit,omitempty"`
	GitBranch string    `json:"git_branch,omitempty" yaml:"git_branch,omitempty"`
	GoVersion string    `json:"go_version,omitempty" yaml:"go_version,omitempty"`
	BuildDate time.Time `json:"build_date,omitzero" yaml:"build_date,omitempty"`
	IsRelease bool      `json:"is_release" yaml:"is_release"`
	IsDirty   bool      `json:"is_dirty" yaml:"is_dirty"`
}

// Get returns the build information. Link-time values win over the
// module build info.
func Get() Info {
	info := Info{
		Version:   Version,
		GitCommit: shortCommit(GitCommit),
		GitBranch: GitBranch,
	}
	if t, err := time.Parse(time.RFC3339, BuildTime); err == nil {
		info.BuildDate = t.UTC()
	}

	if bi, ok := readBuildInfo(); ok && bi != nil {
		info.GoVersion = bi.GoVersion
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				if info.GitCommit == "" {
					info.GitCommit = shortCommit(s.Value)
				}
			case "vcs.modified":
				info.IsDirty = s.Value == "true"
			case "vcs.time":
				if info.BuildDate.IsZero() {
					if t, err := time.Parse(time.RFC3339, s.Value); err == nil {
						info.BuildDate = t.UTC()
					}
				}
			}
		}
	}

	info.IsRelease = info.Version != "dev" && !info.IsDirty && !strings.Contains(info.Version, "dirty")
	return info
}

// Short returns version-commit, with -dirty for modified checkouts.
func (i Info) Short() string {
	if i.GitCommit == "" {
		return i.Version
	}
	s := i.Version + "-" + i.GitCommit
	if i.IsDirty {
		s += "-dirty"
	}
	return s
}

// String returns Short plus the branch when it is not a main branch, the
// build date and the Go version.
func (i Info) String() string {
	var b strings.Builder
	b.WriteString(i.Short())
	if i.GitBranch != "" && i.GitBranch != "main" && i.GitBranch != "master" {
		fmt.Fprintf(&b, " (%s)", i.GitBranch)
	}
	if !i.BuildDate.IsZero() {
		fmt.Fprintf(&b, " built %s", i.BuildDate.Format(time.RFC3339))
	}
	if i.GoVersion != "" {
		fmt.Fprintf(&b, " %s", i.GoVersion)
	}
	return b.String()
}

func shortCommit(c string) string {
	if len(c) > shortCommitLen {
		return c[:shortCommitLen]
	}
	return c
}
