// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package archive

import "errors"

var (
	// ErrNotArchive is returned when the input cannot be opened as a zip archive.
	ErrNotArchive = errors.New("not a zip archive")

	// ErrEntryTooLarge is returned when an entry exceeds the size read into memory.
	ErrEntryTooLarge = errors.New("archive entry too large")
)
