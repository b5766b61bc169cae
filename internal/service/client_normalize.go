// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/macro-marketplace/models"
)

// timestampLayouts are tried in order. The backend emits ISO 8601 without a
// zone, which is read as UTC.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// normalizer maps backend shapes onto the client's records.
type normalizer struct {
	origin *url.URL
	now    func() time.Time
}

func newNormalizer(baseURL string) normalizer {
	n := normalizer{now: time.Now}
	if u, err := url.Parse(baseURL); err == nil && u.Host != "" {
		n.origin = &url.URL{Scheme: u.Scheme, Host: u.Host}
	}
	return n
}

func (n normalizer) record(dto models.MakroDTO) models.MacroRecord {
	rec := models.MacroRecord{
		ID:         macroKey(dto.ID),
		Name:       dto.Name,
		Filename:   dto.Filename,
		AuthorID:   dto.AuthorID,
		AuthorName: dto.AuthorName,
		PreviewURL: n.previewURL(dto.PreviewURL),
		CreatedAt:  n.createdAt(dto.CreatedAt),
	}
	if dto.Desc != nil {
		rec.Description = *dto.Desc
	}
	if dto.Usecase != nil {
		rec.Category, _ = models.ParseCategory(*dto.Usecase)
	}
	if t, ok := parseTimestamp(dto.UpdatedAt); ok {
		rec.UpdatedAt = t
	}
	if rec.Filename == "" {
		rec.Filename = packageFilename(rec.Name)
	}
	return rec
}

// macroKey renders integral ids in canonical decimal so "007" and 7 match.
func macroKey(id models.MacroID) string {
	if v, err := strconv.ParseInt(string(id), 10, 64); err == nil {
		return strconv.FormatInt(v, 10)
	}
	return string(id)
}

func (n normalizer) records(dtos []models.MakroDTO) []models.MacroRecord {
	out := make([]models.MacroRecord, 0, len(dtos))
	for _, dto := range dtos {
		out = append(out, n.record(dto))
	}
	return out
}

func (n normalizer) page(env models.CatalogEnvelope) models.CatalogPage {
	return models.CatalogPage{
		Records:     n.records(env.Makros),
		Total:       env.Total,
		Pages:       env.Pages,
		CurrentPage: env.CurrentPage,
		PerPage:     env.PerPage,
	}
}

// previewURL resolves a relative preview path against the backend origin.
func (n normalizer) previewURL(raw *string) *string {
	if raw == nil {
		return nil
	}
	s := strings.TrimSpace(*raw)
	if s == "" {
		return nil
	}

	ref, err := url.Parse(s)
	if err != nil || ref.IsAbs() || n.origin == nil {
		return &s
	}
	if ref.Host == "" && !strings.HasPrefix(ref.Path, "/") {
		ref.Path = "/" + ref.Path
	}
	abs := n.origin.ResolveReference(ref).String()
	return &abs
}

func (n normalizer) createdAt(raw string) time.Time {
	if t, ok := parseTimestamp(raw); ok {
		return t
	}
	return n.now().UTC()
}

func parseTimestamp(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, raw, time.UTC); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func accountFromDTO(dto models.AccountDTO) models.Account {
	acc := models.Account{ID: dto.ID, Name: dto.Name}
	if t, ok := parseTimestamp(dto.CreatedAt); ok {
		acc.CreatedAt = t
	}
	return acc
}

// packageFilename is the name the backend gives a package on download.
func packageFilename(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "makro.zip"
	}
	return name + ".zip"
}
