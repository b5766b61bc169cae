// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/macro-marketplace/models"
)

func strPtr(s string) *string { return &s }

func TestNormalizer_Record(t *testing.T) {
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	n := newNormalizer("http://market.local:5000/api")
	n.now = func() time.Time { return fixed }

	t.Run("full record", func(t *testing.T) {
		rec := n.record(models.MakroDTO{
			ID:         "17",
			Name:       "Mail merge",
			Desc:       strPtr("Merges letters"),
			Usecase:    strPtr("word"),
			AuthorID:   3,
			AuthorName: "bob",
			Filename:   "merge.zip",
			PreviewURL: strPtr("static/previews/17.gif"),
			CreatedAt:  "2025-06-01T08:30:00.123456",
			UpdatedAt:  "2025-06-02 10:00:00",
		})

		assert.Equal(t, "17", rec.ID)
		assert.Equal(t, "Merges letters", rec.Description)
		assert.Equal(t, models.CategoryWord, rec.Category)
		assert.Equal(t, "merge.zip", rec.Filename)
		assert.Equal(t, int64(3), rec.AuthorID)
		require.NotNil(t, rec.PreviewURL)
		assert.Equal(t, "http://market.local:5000/static/previews/17.gif", *rec.PreviewURL)
		assert.Equal(t, time.Date(2025, 6, 1, 8, 30, 0, 123456000, time.UTC), rec.CreatedAt)
		assert.Equal(t, time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC), rec.UpdatedAt)
		assert.False(t, rec.IsPlaceholder())
	})

	t.Run("missing optional fields", func(t *testing.T) {
		rec := n.record(models.MakroDTO{ID: "2", Name: "Bare", CreatedAt: "not a date"})

		assert.Empty(t, rec.Description)
		assert.Equal(t, models.CategoryNone, rec.Category)
		assert.Nil(t, rec.PreviewURL)
		assert.Equal(t, fixed, rec.CreatedAt)
		assert.True(t, rec.UpdatedAt.IsZero())
		assert.Equal(t, "Bare.zip", rec.Filename)
	})

	t.Run("absolute preview kept", func(t *testing.T) {
		rec := n.record(models.MakroDTO{ID: "3", PreviewURL: strPtr("https://cdn.example.org/p.png")})
		require.NotNil(t, rec.PreviewURL)
		assert.Equal(t, "https://cdn.example.org/p.png", *rec.PreviewURL)
	})

	t.Run("blank preview dropped", func(t *testing.T) {
		rec := n.record(models.MakroDTO{ID: "4", PreviewURL: strPtr("  ")})
		assert.Nil(t, rec.PreviewURL)
	})

	t.Run("unknown category kept verbatim", func(t *testing.T) {
		rec := n.record(models.MakroDTO{ID: "5", Usecase: strPtr(" Games ")})
		assert.Equal(t, models.Category("Games"), rec.Category)
	})
}

func TestNormalizer_Page(t *testing.T) {
	n := newNormalizer("http://localhost:5000")
	page := n.page(models.CatalogEnvelope{
		Makros:      []models.MakroDTO{{ID: "1"}, {ID: "2"}},
		Total:       42,
		Pages:       3,
		CurrentPage: 2,
		PerPage:     20,
	})

	assert.Len(t, page.Records, 2)
	assert.Equal(t, 42, page.Total)
	assert.Equal(t, 3, page.Pages)
	assert.Equal(t, 2, page.CurrentPage)
	assert.Equal(t, 20, page.PerPage)
}

func TestNormalizer_NoOrigin(t *testing.T) {
	n := newNormalizer("")
	got := n.previewURL(strPtr("/static/a.png"))
	require.NotNil(t, got)
	assert.Equal(t, "/static/a.png", *got)
}

func TestNormalizer_RecordIDForms(t *testing.T) {
	n := newNormalizer("http://market.local:5000/api")
	tests := []struct {
		id   models.MacroID
		want string
	}{
		{"42", "42"},
		{"007", "7"},
		{"3f2a-bc", "3f2a-bc"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(string(tt.id), func(t *testing.T) {
			rec := n.record(models.MakroDTO{ID: tt.id, Name: "Macro"})
			assert.Equal(t, tt.want, rec.ID)
		})
	}
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
		ok   bool
	}{
		{"2025-01-02T03:04:05Z", time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC), true},
		{"2025-01-02T05:04:05+02:00", time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC), true},
		{"2025-01-02T03:04:05", time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC), true},
		{"2025-01-02 03:04:05", time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC), true},
		{"2025-01-02", time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC), true},
		{"", time.Time{}, false},
		{"yesterday", time.Time{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := parseTimestamp(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.True(t, tt.want.Equal(got), "got %s", got)
		})
	}
}

func TestAccountFromDTO(t *testing.T) {
	acc := accountFromDTO(models.AccountDTO{ID: 9, Name: "anna", CreatedAt: "2024-12-31T23:59:59"})
	assert.Equal(t, int64(9), acc.ID)
	assert.Equal(t, "anna", acc.Name)
	assert.Equal(t, time.Date(2024, 12, 31, 23, 59, 59, 0, time.UTC), acc.CreatedAt)
}

func TestPackageFilename(t *testing.T) {
	assert.Equal(t, "Report.zip", packageFilename(" Report "))
	assert.Equal(t, "makro.zip", packageFilename(""))
}
