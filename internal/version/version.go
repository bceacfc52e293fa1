/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package version reports which build of cooldata is running.
//
// Release builds set the variables below with -ldflags. Other builds fall
// back to the module version and the VCS stamps the Go toolchain embeds.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

// Set at build time via ldflags.
var (
	Version   = "dev"
	GitCommit = ""
	GitTag    = ""
	BuildTime = ""
	GitDirty  = ""
)

// Build describes the running binary.
type Build struct {
	Version   string `json:"version"`
	Commit    string `json:"commit,omitempty"`
	BuildTime string `json:"buildTime,omitempty"`
	Dirty     bool   `json:"dirty,omitempty"`
	GoVersion string `json:"goVersion"`
}

// String renders b for humans, e.g. "v1.2.0 (commit 1a2b3c4, dirty)".
func (b Build) String() string {
	var extra []string
	if b.Commit != "" {
		extra = append(extra, "commit "+short(b.Commit))
	}
	if b.Dirty {
		extra = append(extra, "dirty")
	}
	if len(extra) == 0 {
		return b.Version
	}
	return fmt.Sprintf("%s (%s)", b.Version, strings.Join(extra, ", "))
}

// Read collects build information from ldflags, falling back to the
// embedded module and VCS data.
func Read() Build {
	b := Build{
		Version:   Version,
		Commit:    GitCommit,
		BuildTime: BuildTime,
		Dirty:     GitDirty == "dirty",
		GoVersion: runtime.Version(),
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		fromBuildInfo(&b, info)
	}
	if b.Version == "dev" && GitTag != "" {
		b.Version = describe(GitTag, b.Commit, b.Dirty)
	}
	return b
}

// Get returns the version string, as sent in the User-Agent of fetches.
func Get() string {
	return Read().Version
}

func fromBuildInfo(b *Build, info *debug.BuildInfo) {
	if b.Version == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		b.Version = info.Main.Version
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			if b.Commit == "" {
				b.Commit = s.Value
			}
		case "vcs.time":
			if b.BuildTime == "" {
				b.BuildTime = s.Value
			}
		case "vcs.modified":
			if GitDirty == "" {
				b.Dirty = s.Value == "true"
			}
		}
	}
}

// describe mimics `git describe`: the tag, then the short commit unless
// the tag already ends with it, then -dirty.
func describe(tag, commit string, dirty bool) string {
	v := tag
	if c := short(commit); c != "" && !strings.HasSuffix(tag, c) {
		v += "-" + c
	}
	if dirty {
		v += "-dirty"
	}
	return v
}

func short(commit string) string {
	if len(commit) > 7 {
		return commit[:7]
	}
	return commit
}
