// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strings"
)

const buildInfoUnknown = "N/A"

// BuildInfo is the version stamp linked into the qnexus binaries with
// -ldflags "-X main.buildVersion=...".
type BuildInfo struct {
	Version string
	Date    string
	Commit  string
}

// NewBuildInfo fills empty fields with "N/A".
func NewBuildInfo(version, date, commit string) BuildInfo {
	return BuildInfo{
		Version: orUnknown(version),
		Date:    orUnknown(date),
		Commit:  orUnknown(commit),
	}
}

func (b BuildInfo) String() string {
	return fmt.Sprintf("Build version: %s\nBuild date: %s\nBuild commit: %s\n", b.Version, b.Date, b.Commit)
}

func orUnknown(v string) string {
	if strings.TrimSpace(v) == "" {
		return buildInfoUnknown
	}
	return v
}
