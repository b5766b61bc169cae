// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"path"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/macro-marketplace/internal/archive"
	"github.com/MKhiriev/macro-marketplace/internal/blob"
	"github.com/MKhiriev/macro-marketplace/internal/logger"
	"github.com/MKhiriev/macro-marketplace/internal/utils"
	"github.com/MKhiriev/macro-marketplace/models"
)

// DraftPreview is the preview currently attached to a draft.
type DraftPreview struct {
	models.Preview
	// UserSelected is set when the user picked the preview explicitly. Such a
	// preview is never replaced by one found inside a package.
	UserSelected bool
}

// DraftState is a copy of the form fields of an [UploadDraft].
type DraftState struct {
	Name        string
	Description string
	Category    models.Category
	PackageName string
	PackageSize int
	Preview     *DraftPreview
}

// UploadDraft holds the upload form between package selection and submit.
// It owns the object URL of its preview and releases it whenever the
// preview is replaced or the draft is reset.
type UploadDraft struct {
	catalog  ClientCatalogService
	ingestor *archive.Ingestor
	blobs    *blob.Registry
	ids      *utils.UUIDGenerator
	logger   *logger.Logger
	now      func() time.Time

	mu          sync.Mutex
	id          string
	createdAt   time.Time
	name        string
	description string
	category    models.Category
	pkg         *models.LocalFile
	previewFile *models.LocalFile
	preview     *DraftPreview
}

// NewUploadDraft returns an empty draft that submits through catalog.
func NewUploadDraft(catalog ClientCatalogService, ingestor *archive.Ingestor, blobs *blob.Registry, logger *logger.Logger) *UploadDraft {
	d := &UploadDraft{
		catalog:  catalog,
		ingestor: ingestor,
		blobs:    blobs,
		ids:      utils.NewUUIDGenerator(),
		logger:   logger,
		now:      time.Now,
	}
	d.clearLocked()
	return d
}

// State returns a copy of the form fields.
func (d *UploadDraft) State() DraftState {
	d.mu.Lock()
	defer d.mu.Unlock()

	st := DraftState{
		Name:        d.name,
		Description: d.description,
		Category:    d.category,
	}
	if d.pkg != nil {
		st.PackageName = d.pkg.Name
		st.PackageSize = d.pkg.Size()
	}
	if d.preview != nil {
		p := *d.preview
		st.Preview = &p
	}
	return st
}

// SetName sets the name field.
func (d *UploadDraft) SetName(name string) {
	d.mu.Lock()
	d.name = name
	d.mu.Unlock()
}

// SetDescription sets the description field.
func (d *UploadDraft) SetDescription(description string) {
	d.mu.Lock()
	d.description = description
	d.mu.Unlock()
}

// SetCategory sets the category field. Unknown values are kept and rejected
// on submit.
func (d *UploadDraft) SetCategory(raw string) {
	category, _ := models.ParseCategory(raw)
	d.mu.Lock()
	d.category = category
	d.mu.Unlock()
}

// SelectPackage attaches a package file. The metadata found inside only
// fills fields that are still empty, and a preview found inside is used only
// while the user has not picked one. A file that is not a zip archive is
// rejected with [ErrNotArchive] and leaves the draft unchanged.
func (d *UploadDraft) SelectPackage(filename string, data []byte) (models.PackageMetadata, error) {
	if len(data) == 0 {
		return models.PackageMetadata{}, ErrNoPackageFile
	}
	if !archive.IsArchive(filename, data) {
		return models.PackageMetadata{}, ErrNotArchive
	}

	res := d.ingestor.Ingest(data)

	d.mu.Lock()
	defer d.mu.Unlock()

	d.pkg = &models.LocalFile{Name: filename, Data: slices.Clone(data)}

	meta := res.Metadata
	if meta.Name != nil && strings.TrimSpace(d.name) == "" {
		d.name = *meta.Name
	}
	if meta.Description != nil && strings.TrimSpace(d.description) == "" {
		d.description = *meta.Description
	}
	if meta.Category != nil && d.category == models.CategoryNone {
		d.category = *meta.Category
	}

	if res.Preview != nil && (d.preview == nil || !d.preview.UserSelected) {
		d.setPreviewLocked(*res.Preview, false)
	}

	d.logger.Debug().
		Str("func", "UploadDraft.SelectPackage").
		Str("file", filename).
		Bool("metadata", !meta.IsEmpty()).
		Bool("preview", res.Preview != nil).
		Msg("package selected")
	return meta, nil
}

// SelectPreview attaches a preview chosen by the user. It replaces any
// previous preview and is kept when another package is selected.
func (d *UploadDraft) SelectPreview(filename string, data []byte) (models.Preview, error) {
	if !isMedia(filename, data) {
		return models.Preview{}, ErrInvalidPreview
	}

	asset := models.PreviewAsset{
		Filename: filename,
		Data:     slices.Clone(data),
		MIMEType: archive.DetectMIME(filename, data),
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.setPreviewLocked(asset, true)
	return d.preview.Preview, nil
}

// Reset releases the preview URL and clears the form.
func (d *UploadDraft) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.clearLocked()
}

// Record returns the draft as a local placeholder record. Placeholders are
// for display only and never enter the catalog cache.
func (d *UploadDraft) Record() models.MacroRecord {
	d.mu.Lock()
	defer d.mu.Unlock()

	rec := models.MacroRecord{
		ID:          d.id,
		Name:        strings.TrimSpace(d.name),
		Description: d.description,
		Category:    d.category,
		CreatedAt:   d.createdAt,
		LocalFile:   &models.LocalFile{},
	}
	if d.pkg != nil {
		rec.Filename = d.pkg.Name
		rec.LocalFile = &models.LocalFile{Name: d.pkg.Name, Data: d.pkg.Data}
	}
	if d.preview != nil {
		u := d.preview.URL
		rec.PreviewURL = &u
	}
	return rec
}

// Submit uploads the draft. The draft is reset after the backend confirmed
// the upload and kept as is on any failure.
func (d *UploadDraft) Submit(ctx context.Context) (models.MacroRecord, error) {
	d.mu.Lock()
	macro := models.NewMacro{
		Name:        d.name,
		Description: d.description,
		Category:    d.category,
	}
	if d.pkg != nil {
		macro.File = *d.pkg
	}
	if d.previewFile != nil {
		p := *d.previewFile
		macro.Preview = &p
	}
	d.mu.Unlock()

	if strings.TrimSpace(macro.Name) == "" {
		return models.MacroRecord{}, ErrEmptyMacroName
	}
	if len(macro.File.Data) == 0 {
		return models.MacroRecord{}, ErrNoPackageFile
	}

	rec, err := d.catalog.Create(ctx, macro)
	if err != nil {
		return models.MacroRecord{}, err
	}

	d.Reset()
	return rec, nil
}

func (d *UploadDraft) setPreviewLocked(asset models.PreviewAsset, userSelected bool) {
	if d.preview != nil {
		d.blobs.Revoke(d.preview.URL)
	}
	d.preview = &DraftPreview{
		Preview: models.Preview{
			URL:     d.blobs.Create(asset.Data, asset.MIMEType),
			IsVideo: asset.IsVideo(),
		},
		UserSelected: userSelected,
	}
	d.previewFile = &models.LocalFile{Name: path.Base(asset.Filename), Data: asset.Data}
}

func (d *UploadDraft) clearLocked() {
	if d.preview != nil {
		d.blobs.Revoke(d.preview.URL)
	}
	d.id = d.ids.Generate()
	d.createdAt = d.now().UTC()
	d.name = ""
	d.description = ""
	d.category = models.CategoryNone
	d.pkg = nil
	d.previewFile = nil
	d.preview = nil
}
