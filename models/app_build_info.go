// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"io"
)

// notAvailable is printed for build metadata the linker did not inject.
const notAvailable = "N/A"

// AppBuildInfo carries build metadata injected by linker flags.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

// NewAppBuildInfo constructs [AppBuildInfo]. Empty values stay empty so the
// caller can tell a tagged build from a local one; see [AppBuildInfo.Write].
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: buildVersion,
		buildDate:    buildDate,
		buildCommit:  buildCommit,
	}
}

// BuildVersion returns the semantic version string of the build.
func (a AppBuildInfo) BuildVersion() string {
	return a.buildVersion
}

// BuildDate returns the build timestamp string.
func (a AppBuildInfo) BuildDate() string {
	return a.buildDate
}

// BuildCommit returns the source-control commit hash used for the build.
func (a AppBuildInfo) BuildCommit() string {
	return a.buildCommit
}

// Write prints the build banner, substituting N/A for missing values.
func (a AppBuildInfo) Write(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Build version: %s\nBuild date: %s\nBuild commit: %s\n",
		orNotAvailable(a.buildVersion),
		orNotAvailable(a.buildDate),
		orNotAvailable(a.buildCommit),
	)
	return err
}

func orNotAvailable(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}
