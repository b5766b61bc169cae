// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// MacroRecord is the canonical catalog entry every view reads from the
// catalog cache.
type MacroRecord struct {
	// ID is the opaque identifier of the macro. For records sourced from the
	// backend it is the decimal form of the server-assigned integer key.
	ID string `json:"id"`

	// Name is the display name of the macro.
	Name string `json:"name"`

	// Description is a free-form description ("desc" on the wire).
	Description string `json:"description"`

	// Category is one of the [Category] values or empty ("usecase" on the wire).
	Category Category `json:"category"`

	// Filename is the display-only name of the underlying package file.
	Filename string `json:"filename"`

	// AuthorID and AuthorName describe the uploading account. Both are empty
	// for records that did not come from the backend.
	AuthorID   int64  `json:"author_id,omitempty"`
	AuthorName string `json:"author_name,omitempty"`

	// PreviewURL is the absolute URL of a preview image or video, nil when the
	// macro has no preview.
	PreviewURL *string `json:"preview_url"`

	// CreatedAt is always a concrete point in time once the record is in
	// the cache.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the last server-side modification time, zero if unknown.
	UpdatedAt time.Time `json:"updated_at"`

	// LocalFile is set only on placeholders built locally before the
	// backend confirmed the upload. It is always nil for remote records.
	LocalFile *LocalFile `json:"-"`
}

// IsPlaceholder reports whether the record is a local, not yet confirmed draft.
func (m MacroRecord) IsPlaceholder() bool {
	return m.LocalFile != nil
}

// LocalFile is an in-memory handle of a package file selected by the user.
type LocalFile struct {
	Name string
	Data []byte
}

// Size returns the file length in bytes.
func (f *LocalFile) Size() int {
	if f == nil {
		return 0
	}
	return len(f.Data)
}

// MacroPatch is a partial update of a macro. Nil fields are not sent.
type MacroPatch struct {
	Name        *string   `json:"name,omitempty"`
	Description *string   `json:"desc,omitempty"`
	Category    *Category `json:"usecase,omitempty"`
}

// IsEmpty reports whether the patch carries no field at all.
func (p MacroPatch) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && p.Category == nil
}

// NewMacro is the input of an upload: the package file, its metadata and an
// optional preview file.
type NewMacro struct {
	File        LocalFile
	Name        string
	Description string
	Category    Category
	Preview     *LocalFile
}
