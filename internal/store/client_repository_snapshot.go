// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/MKhiriev/macro-marketplace/internal/logger"
	"github.com/MKhiriev/macro-marketplace/models"
)

type snapshotRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewSnapshotRepository returns a [SnapshotRepository] backed by db.
func NewSnapshotRepository(db *DB, logger *logger.Logger) SnapshotRepository {
	return &snapshotRepository{
		DB:     db,
		logger: logger,
		now:    time.Now,
	}
}

func (s *snapshotRepository) SaveSnapshot(ctx context.Context, records []models.MacroRecord) error {
	log := logger.FromContext(ctx)

	remote := make([]models.MacroRecord, 0, len(records))
	for _, r := range records {
		if !r.IsPlaceholder() {
			remote = append(remote, r)
		}
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "snapshotRepository.SaveSnapshot").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer func() { _ = tx.Rollback() }()

	query, args, err := buildClearSnapshotQuery()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "snapshotRepository.SaveSnapshot").Msg("failed to clear previous snapshot")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	savedAt := s.now().UTC()
	for start := 0; start < len(remote); start += snapshotInsertBatch {
		end := min(start+snapshotInsertBatch, len(remote))

		query, args, err = buildInsertSnapshotQuery(remote[start:end], start, savedAt)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).
				Str("func", "snapshotRepository.SaveSnapshot").
				Int("offset", start).
				Msg("failed to insert snapshot rows")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "snapshotRepository.SaveSnapshot").Msg("failed to commit snapshot")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	log.Debug().Str("func", "snapshotRepository.SaveSnapshot").Int("records", len(remote)).Msg("catalog snapshot saved")
	return nil
}

func (s *snapshotRepository) LoadSnapshot(ctx context.Context) ([]models.MacroRecord, time.Time, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectSnapshotQuery()
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "snapshotRepository.LoadSnapshot").Msg("failed to query snapshot")
		return nil, time.Time{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var (
		records []models.MacroRecord
		savedAt time.Time
	)
	for rows.Next() {
		var (
			r          models.MacroRecord
			position   int
			category   string
			previewURL sql.NullString
			rowSavedAt time.Time
		)
		if err = rows.Scan(
			&position,
			&r.ID,
			&r.Name,
			&r.Description,
			&category,
			&r.Filename,
			&r.AuthorID,
			&r.AuthorName,
			&previewURL,
			&r.CreatedAt,
			&r.UpdatedAt,
			&rowSavedAt,
		); err != nil {
			log.Err(err).Str("func", "snapshotRepository.LoadSnapshot").Msg("failed to scan snapshot row")
			return nil, time.Time{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		r.Category = models.Category(category)
		if previewURL.Valid {
			u := previewURL.String
			r.PreviewURL = &u
		}
		if rowSavedAt.After(savedAt) {
			savedAt = rowSavedAt
		}
		records = append(records, r)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "snapshotRepository.LoadSnapshot").Msg("error iterating snapshot rows")
		return nil, time.Time{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	if len(records) == 0 {
		return nil, time.Time{}, ErrSnapshotNotFound
	}
	return records, savedAt, nil
}
