// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

const clientProduct = "macro-marketplace-client"

// AppBuildInfo is the version stamp of the client binary. The values are set
// through linker flags; any of them may be empty in development builds.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

// NewAppBuildInfo returns the build stamp with surrounding spaces removed.
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: strings.TrimSpace(buildVersion),
		buildDate:    strings.TrimSpace(buildDate),
		buildCommit:  strings.TrimSpace(buildCommit),
	}
}

func (a AppBuildInfo) BuildVersion() string { return a.buildVersion }
func (a AppBuildInfo) BuildDate() string    { return a.buildDate }
func (a AppBuildInfo) BuildCommit() string  { return a.buildCommit }

// UserAgent is sent with every backend request, e.g.
// "macro-marketplace-client/1.4.0". Unstamped and "N/A" builds report "dev".
func (a AppBuildInfo) UserAgent() string {
	version := a.buildVersion
	if version == "" || version == "N/A" {
		version = "dev"
	}
	return clientProduct + "/" + version
}
