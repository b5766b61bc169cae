// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/macro-marketplace/models"
)

//go:embed fallback_macros.json
var bundledMacros []byte

// fallbackEntry is a record of the bundled dataset before normalization.
type fallbackEntry struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Filename    string  `json:"filename"`
	PreviewURL  *string `json:"preview_url"`
	CreatedAt   string  `json:"created_at"`
}

type bundledFallback struct {
	raw  []byte
	norm normalizer
}

// NewBundledFallback returns a [FallbackLoader] over the dataset compiled into
// the binary. Relative preview paths are resolved against baseURL.
func NewBundledFallback(baseURL string) FallbackLoader {
	return &bundledFallback{raw: bundledMacros, norm: newNormalizer(baseURL)}
}

func (f *bundledFallback) Load(_ context.Context) ([]models.MacroRecord, error) {
	var entries []fallbackEntry
	if err := json.Unmarshal(f.raw, &entries); err != nil {
		return nil, fmt.Errorf("decode bundled macros: %w", err)
	}

	records := make([]models.MacroRecord, 0, len(entries))
	for _, e := range entries {
		if strings.TrimSpace(e.ID) == "" {
			continue
		}
		category, _ := models.ParseCategory(e.Category)
		rec := models.MacroRecord{
			ID:          e.ID,
			Name:        e.Name,
			Description: e.Description,
			Category:    category,
			Filename:    e.Filename,
			PreviewURL:  f.norm.previewURL(e.PreviewURL),
			CreatedAt:   f.norm.createdAt(e.CreatedAt),
		}
		if rec.Filename == "" {
			rec.Filename = packageFilename(rec.Name)
		}
		records = append(records, rec)
	}
	return records, nil
}
