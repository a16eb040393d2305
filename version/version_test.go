package version

import (
	"runtime/debug"
	"strings"
	"testing"
)

func withBuild(t *testing.T, version, commit, branch, buildTime string, settings ...debug.BuildSetting) {
	t.Helper()
	origVersion, origCommit, origBranch, origBuildTime, origRead :=
		Version, GitCommit, GitBranch, BuildTime, readBuildInfo
	t.Cleanup(func() {
		Version, GitCommit, GitBranch, BuildTime, readBuildInfo =
			origVersion, origCommit, origBranch, origBuildTime, origRead
	})

	Version, GitCommit, GitBranch, BuildTime = version, commit, branch, buildTime
	readBuildInfo = func() (*debug.BuildInfo, bool) {
		return &debug.BuildInfo{GoVersion: "go1.25.0", Settings: settings}, true
	}
}

func TestGetDefaults(t *testing.T) {
	withBuild(t, "dev", "", "", "")

	info := Get()
	if info.Version != "dev" {
		t.Errorf("expected version 'dev', got %q", info.Version)
	}
	if info.IsRelease {
		t.Error("dev should not be a release")
	}
	if !info.BuildDate.IsZero() {
		t.Errorf("expected no build date, got %v", info.BuildDate)
	}
	if info.GoVersion != "go1.25.0" {
		t.Errorf("expected go version from build info, got %q", info.GoVersion)
	}
	if info.Short() != "dev" {
		t.Errorf("expected short 'dev', got %q", info.Short())
	}
}

func TestGetLinkTimeValues(t *testing.T) {
	withBuild(t, "1.2.0", "abc1234def", "main", "2026-03-01T10:30:00Z",
		debug.BuildSetting{Key: "vcs.revision", Value: "fffffffffff"},
		debug.BuildSetting{Key: "vcs.time", Value: "2020-01-01T00:00:00Z"},
	)

	info := Get()
	if !info.IsRelease {
		t.Error("1.2.0 should be a release")
	}
	if info.GitCommit != "abc1234" {
		t.Errorf("expected link-time commit cut to 7, got %q", info.GitCommit)
	}
	if info.BuildDate.Year() != 2026 {
		t.Errorf("expected link-time build date, got %v", info.BuildDate)
	}
	if got := info.String(); got != "1.2.0-abc1234 built 2026-03-01T10:30:00Z go1.25.0" {
		t.Errorf("unexpected string %q", got)
	}
}

func TestGetFromBuildInfo(t *testing.T) {
	withBuild(t, "1.2.0", "", "feature/catalog", "",
		debug.BuildSetting{Key: "vcs.revision", Value: "0123456789abcdef"},
		debug.BuildSetting{Key: "vcs.modified", Value: "true"},
		debug.BuildSetting{Key: "vcs.time", Value: "2026-02-02T08:00:00Z"},
	)

	info := Get()
	if info.GitCommit != "0123456" {
		t.Errorf("expected vcs revision, got %q", info.GitCommit)
	}
	if !info.IsDirty || info.IsRelease {
		t.Errorf("expected dirty non-release build, got %+v", info)
	}
	if info.Short() != "1.2.0-0123456-dirty" {
		t.Errorf("unexpected short %q", info.Short())
	}
	if !strings.Contains(info.String(), "(feature/catalog)") {
		t.Errorf("expected branch in %q", info.String())
	}
}

func TestGetWithoutBuildInfo(t *testing.T) {
	withBuild(t, "1.0.0-dirty", "", "", "not a time")
	readBuildInfo = func() (*debug.BuildInfo, bool) { return nil, false }

	info := Get()
	if info.IsRelease {
		t.Error("dirty version should not be a release")
	}
	if info.GoVersion != "" || !info.BuildDate.IsZero() {
		t.Errorf("expected empty build details, got %+v", info)
	}
	if info.String() != "1.0.0-dirty" {
		t.Errorf("unexpected string %q", info.String())
	}
}
