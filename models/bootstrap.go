// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// BootstrapSource tells where the first catalog load came from.
type BootstrapSource string

const (
	BootstrapRemote   BootstrapSource = "remote"
	BootstrapSnapshot BootstrapSource = "snapshot"
	BootstrapBundled  BootstrapSource = "bundled"
)
