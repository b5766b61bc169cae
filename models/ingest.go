// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// PackageMetadata is the metadata embedded into an uploaded macro archive.
// Absent keys stay nil.
type PackageMetadata struct {
	Name        *string
	Description *string
	Category    *Category
}

// IsEmpty reports whether no key was found.
func (m PackageMetadata) IsEmpty() bool {
	return m.Name == nil && m.Description == nil && m.Category == nil
}

// PreviewAsset is a raw preview image or video.
type PreviewAsset struct {
	Filename string
	Data     []byte
	MIMEType string
}

// IsVideo reports whether the asset is a video.
func (p PreviewAsset) IsVideo() bool {
	return strings.HasPrefix(p.MIMEType, "video/")
}

// Preview is a displayable preview: an object URL plus its kind.
type Preview struct {
	URL     string
	IsVideo bool
}
