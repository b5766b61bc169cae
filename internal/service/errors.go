// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/macro-marketplace/internal/archive"
)

// Validation errors. They are returned before any request is sent and leave
// all client state untouched.
var (
	ErrEmptyMacroID     = errors.New("macro id is required")
	ErrEmptyMacroName   = errors.New("macro name is required")
	ErrNoPackageFile    = errors.New("a package file is required")
	ErrNotArchive       = archive.ErrNotArchive
	ErrInvalidCategory  = errors.New("unknown category")
	ErrInvalidPreview   = errors.New("preview must be an image or a video")
	ErrEmptyPatch       = errors.New("nothing to update")
	ErrEmptyCredentials = errors.New("name and password are required")
	ErrNotLoggedIn      = errors.New("not logged in")
)

// Errors translated from backend responses.
var (
	ErrMacroNotFound      = errors.New("macro not found")
	ErrWrongCredentials   = errors.New("wrong name or password")
	ErrNameTaken          = errors.New("account name is already taken")
	ErrNotAuthorized      = errors.New("not authorized")
	ErrNotAuthor          = errors.New("only the author can change this macro")
	ErrBackendUnavailable = errors.New("marketplace is not reachable")
)

// ErrStaleResult is returned by list operations whose response arrived after a
// newer list request had been issued. The response is dropped and the
// catalog cache keeps the state of the newer request.
var ErrStaleResult = errors.New("result superseded by a newer request")

// ErrNoFallbackData is returned by Bootstrap when the backend, the local
// snapshot and the bundled dataset all failed.
var ErrNoFallbackData = errors.New("no catalog data available")
