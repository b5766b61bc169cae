// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "errors"

var errEmptyPath = errors.New("enter a file path first")

const (
	msgLoginToUpload = "Log in to upload macros."
	msgLoginToList   = "Log in to see your own macros."
)

// ErrNoServices is returned by [New] when services or storages are missing.
var ErrNoServices = errors.New("tui: services and storages are required")
