// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package archive

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/MKhiriev/macro-marketplace/internal/logger"
	"github.com/MKhiriev/macro-marketplace/models"
)

// MaxEntrySize bounds the uncompressed size of a single entry read into memory.
const MaxEntrySize = 32 << 20

// metadataNames are checked in this order, each first at the root and then
// one directory deep.
var metadataNames = []string{"meta.json", "metadata.json", "makro.json", "macro.json"}

// Result is what a package yields: metadata, possibly empty, and an optional
// preview asset.
type Result struct {
	Metadata models.PackageMetadata
	Preview  *models.PreviewAsset
}

// Ingestor extracts [Result] values from zip packages.
type Ingestor struct {
	logger       *logger.Logger
	maxEntrySize uint64
}

// NewIngestor returns an Ingestor that logs through log.
func NewIngestor(log *logger.Logger) *Ingestor {
	return &Ingestor{logger: log, maxEntrySize: MaxEntrySize}
}

// Ingest never fails: a malformed package yields an empty Result.
func (i *Ingestor) Ingest(data []byte) Result {
	res, err := i.Parse(data)
	if err != nil {
		i.logger.Debug().Err(err).Str("func", "Ingestor.Ingest").Int("size", len(data)).Msg("package ingestion degraded to empty result")
		return Result{}
	}
	return res
}

// Parse opens data as a zip archive and looks up the metadata and preview
// entries. It fails only when data is not a readable archive; missing entries
// are not errors.
func (i *Ingestor) Parse(data []byte) (res Result, err error) {
	// archive/zip may panic on crafted headers
	defer func() {
		if r := recover(); r != nil {
			res, err = Result{}, fmt.Errorf("%w: %v", ErrNotArchive, r)
		}
	}()

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrNotArchive, err)
	}

	files := make([]*zip.File, 0, len(zr.File))
	for _, f := range zr.File {
		if f.FileInfo().IsDir() || isJunk(f.Name) {
			continue
		}
		files = append(files, f)
	}

	if meta, ok := i.findMetadata(files); ok {
		res.Metadata = meta
	}
	if preview, ok := i.findPreview(files); ok {
		res.Preview = &preview
	}
	return res, nil
}

func (i *Ingestor) findMetadata(files []*zip.File) (models.PackageMetadata, bool) {
	for _, name := range metadataNames {
		for _, f := range metadataCandidates(files, name) {
			raw, err := i.readEntry(f)
			if err != nil {
				i.logger.Debug().Err(err).Str("func", "Ingestor.findMetadata").Str("entry", f.Name).Msg("skipping unreadable metadata entry")
				continue
			}
			meta, err := decodeMetadata(raw)
			if err != nil {
				i.logger.Debug().Err(err).Str("func", "Ingestor.findMetadata").Str("entry", f.Name).Msg("skipping undecodable metadata entry")
				continue
			}
			return meta, true
		}
	}
	return models.PackageMetadata{}, false
}

func (i *Ingestor) findPreview(files []*zip.File) (models.PreviewAsset, bool) {
	for _, f := range files {
		if !IsPreviewName(f.Name) {
			continue
		}
		data, err := i.readEntry(f)
		if err != nil {
			i.logger.Debug().Err(err).Str("func", "Ingestor.findPreview").Str("entry", f.Name).Msg("skipping unreadable preview entry")
			continue
		}
		return models.PreviewAsset{
			Filename: path.Base(filepathToSlash(f.Name)),
			Data:     data,
			MIMEType: DetectMIME(f.Name, data),
		}, true
	}
	return models.PreviewAsset{}, false
}

func (i *Ingestor) readEntry(f *zip.File) ([]byte, error) {
	if f.UncompressedSize64 > i.maxEntrySize {
		return nil, fmt.Errorf("%w: %s (%d bytes)", ErrEntryTooLarge, f.Name, f.UncompressedSize64)
	}

	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	// the header size can lie; never read past the limit
	data, err := io.ReadAll(io.LimitReader(rc, int64(i.maxEntrySize)+1))
	if err != nil {
		return nil, err
	}
	if uint64(len(data)) > i.maxEntrySize {
		return nil, fmt.Errorf("%w: %s", ErrEntryTooLarge, f.Name)
	}
	return data, nil
}

// metadataCandidates returns the entries matching name at the root followed
// by those one directory deep, in archive order.
func metadataCandidates(files []*zip.File, name string) []*zip.File {
	var root, nested []*zip.File
	for _, f := range files {
		p := filepathToSlash(f.Name)
		switch {
		case p == name:
			root = append(root, f)
		case strings.Count(p, "/") == 1 && path.Base(p) == name:
			nested = append(nested, f)
		}
	}
	return append(root, nested...)
}

func decodeMetadata(raw []byte) (models.PackageMetadata, error) {
	raw = bytes.TrimPrefix(raw, []byte("\xef\xbb\xbf"))

	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return models.PackageMetadata{}, err
	}

	var meta models.PackageMetadata
	if v, ok := firstString(fields, "name"); ok {
		meta.Name = &v
	}
	if v, ok := firstString(fields, "description", "desc"); ok {
		meta.Description = &v
	}
	if v, ok := firstString(fields, "usecase", "category"); ok {
		c, _ := models.ParseCategory(v)
		meta.Category = &c
	}
	return meta, nil
}

// firstString returns the first key holding a non-blank string.
func firstString(fields map[string]any, keys ...string) (string, bool) {
	for _, k := range keys {
		s, ok := fields[k].(string)
		if !ok {
			continue
		}
		if s = strings.TrimSpace(s); s != "" {
			return s, true
		}
	}
	return "", false
}

func isJunk(name string) bool {
	p := filepathToSlash(name)
	return strings.HasPrefix(p, "__MACOSX/") || strings.HasPrefix(path.Base(p), "._")
}
