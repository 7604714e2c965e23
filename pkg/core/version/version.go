// ============================================================================
// mLaunch - Command Launcher
// ============================================================================
//
// Package:     version
// Description: Central version information, set at build time
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version constants
const (
	// Launcher is the mLaunch release
	Launcher = "1.0.0"

	// ResourceFormat is the shortcut/translation resource layout version
	ResourceFormat = "2"
)

// Build information, overridden with -ldflags "-X ..."
var (
	GitCommit = "development"
	BuildDate = "unknown"
)

// Info describes the running binary
type Info struct {
	Version        string `json:"version" yaml:"version"`
	ResourceFormat string `json:"resource_format" yaml:"resource_format"`
	GitCommit      string `json:"git_commit" yaml:"git_commit"`
	BuildDate      string `json:"build_date" yaml:"build_date"`
	GoVersion      string `json:"go_version" yaml:"go_version"`
	Platform       string `json:"platform" yaml:"platform"`
}

// Get returns the version information of the running binary
func Get() Info {
	return Info{
		Version:        Launcher,
		ResourceFormat: ResourceFormat,
		GitCommit:      GitCommit,
		BuildDate:      BuildDate,
		GoVersion:      runtime.Version(),
		Platform:       runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// Text returns the one-line version banner
func Text() string {
	return fmt.Sprintf("mLaunch %s (%s/%s)", Launcher, runtime.GOOS, runtime.GOARCH)
}
