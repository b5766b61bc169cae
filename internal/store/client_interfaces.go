// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/macro-marketplace/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// SnapshotRepository persists the last catalog page fetched from the backend
// so the client can start with something to show while offline.
type SnapshotRepository interface {
	// SaveSnapshot replaces the stored snapshot with records. Placeholders
	// are skipped.
	SaveSnapshot(ctx context.Context, records []models.MacroRecord) error

	// LoadSnapshot returns the stored records in their saved order and the
	// time they were saved. It returns [ErrSnapshotNotFound] when nothing
	// has been saved.
	LoadSnapshot(ctx context.Context) ([]models.MacroRecord, time.Time, error)
}

// SessionRepository persists the bearer token of the last login so that a
// restarted client can probe the backend with it.
type SessionRepository interface {
	// SaveSession stores session, replacing any previous one.
	SaveSession(ctx context.Context, session models.Session) error

	// LoadSession returns the stored session or [ErrLocalSessionNotFound].
	LoadSession(ctx context.Context) (models.Session, error)

	// DeleteSession forgets the stored session. Deleting when nothing is
	// stored is not an error.
	DeleteSession(ctx context.Context) error
}
