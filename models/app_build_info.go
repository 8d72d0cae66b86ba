// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// AppBuildInfo is the build metadata injected into the binaries with -ldflags.
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

// NewAppBuildInfo constructs [AppBuildInfo]. Empty values are reported as "N/A".
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		version: orNA(version),
		date:    orNA(date),
		commit:  orNA(commit),
	}
}

func (a AppBuildInfo) Version() string { return a.version }
func (a AppBuildInfo) Date() string    { return a.date }
func (a AppBuildInfo) Commit() string  { return a.commit }

// String formats the metadata as a single line for logs and /api/version.
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("Di-NEO %s (built %s, commit %s)", a.version, a.date, a.commit)
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
