// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

var (
	version     = "0.1.0"
	buildCommit = "none"
	buildTime   = "unknown"
)

// BuildInfo describes the running binary.
type BuildInfo struct {
	Version   string            `json:"version"`
	Commit    string            `json:"commit"`
	Time      string            `json:"time"`
	Arch      string            `json:"arch"`
	OS        string            `json:"os"`
	GoVersion string            `json:"go_version,omitempty"`
	Settings  map[string]string `json:"settings,omitempty"`
}

// GetBuildInfo returns the stamped version. withOptions adds the toolchain
// version and the non-empty build settings.
func GetBuildInfo(withOptions bool) *BuildInfo {
	b := &BuildInfo{
		Version: version,
		Commit:  buildCommit,
		Time:    buildTime,
		Arch:    runtime.GOARCH,
		OS:      runtime.GOOS,
	}
	if !withOptions {
		return b
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return b
	}
	b.GoVersion = strings.TrimPrefix(info.GoVersion, "go")
	b.Settings = make(map[string]string, len(info.Settings))
	for _, s := range info.Settings {
		if len(s.Value) == 0 {
			continue
		}
		b.Settings[s.Key] = s.Value
	}
	return b
}

// GetVersionString returns a standard version header
func GetVersionString() string {
	return fmt.Sprintf("livebar %v (%s), built %v", version, buildCommit, buildTime)
}

func GetUserAgent() string {
	return "livebar/" + version
}
