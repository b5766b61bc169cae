// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/macro-marketplace/internal/config"
	"github.com/MKhiriev/macro-marketplace/internal/logger"
)

// ClientStorages groups the client-side state: the two in-memory observable
// stores every view reads from and the SQLite snapshot used when the backend
// is unreachable.
type ClientStorages struct {
	// Catalog is the list of macros currently shown.
	Catalog *CatalogCache

	// Session is the logged-in account, if any.
	Session *SessionState

	// Snapshots persists the last fetched catalog page.
	Snapshots SnapshotRepository

	// Sessions persists the token of the last login.
	Sessions SessionRepository

	db *DB
}

// NewClientStorages opens the SQLite database named in cfg, applies pending
// migrations and returns fresh, empty in-memory stores.
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		Catalog:   NewCatalogCache(),
		Session:   NewSessionState(),
		Snapshots: NewSnapshotRepository(db, logger),
		Sessions:  NewSessionRepository(db, logger),
		db:        db,
	}, nil
}

// Close releases the database connection.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
