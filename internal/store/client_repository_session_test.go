// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/macro-marketplace/internal/config"
	"github.com/MKhiriev/macro-marketplace/internal/logger"
	"github.com/MKhiriev/macro-marketplace/models"
)

func newTestSessionRepo(t *testing.T) (*sessionRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &sessionRepository{
		DB:     &DB{DB: db, logger: l},
		logger: l,
		now:    func() time.Time { return fixedNow },
	}
	return repo, mock, db
}

func testSession() models.Session {
	return models.Session{
		Account: models.Account{
			ID:        7,
			Name:      "anna",
			CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		},
		Token:     "header.payload.sig",
		ExpiresAt: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestSaveSession_Success(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	s := testSession()
	mock.ExpectExec("INSERT OR REPLACE INTO client_session").
		WithArgs(sessionSlot, s.Token, s.Account.ID, s.Account.Name, s.Account.CreatedAt, sqlmock.AnyArg(), fixedNow).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.SaveSession(context.Background(), s))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveSession_ExecError(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT OR REPLACE INTO client_session").
		WithArgs(anyArgs(len(sessionColumns))...).
		WillReturnError(errors.New("disk full"))

	err := repo.SaveSession(context.Background(), testSession())
	require.ErrorIs(t, err, ErrExecutingStatement)
}

func TestLoadSession_NotFound(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT token, account_id, account_name, created_at, expires_at FROM client_session").
		WithArgs(sessionSlot).
		WillReturnRows(sqlmock.NewRows([]string{"token", "account_id", "account_name", "created_at", "expires_at"}))

	_, err := repo.LoadSession(context.Background())
	require.ErrorIs(t, err, ErrLocalSessionNotFound)
}

func TestLoadSession_NullExpiry(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	s := testSession()
	mock.ExpectQuery("SELECT (.+) FROM client_session").
		WithArgs(sessionSlot).
		WillReturnRows(sqlmock.NewRows([]string{"token", "account_id", "account_name", "created_at", "expires_at"}).
			AddRow(s.Token, s.Account.ID, s.Account.Name, s.Account.CreatedAt, nil))

	got, err := repo.LoadSession(context.Background())
	require.NoError(t, err)
	assert.Equal(t, s.Token, got.Token)
	assert.Equal(t, s.Account, got.Account)
	assert.True(t, got.ExpiresAt.IsZero())
}

func TestDeleteSession_Error(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM client_session").WillReturnError(errors.New("locked"))

	err := repo.DeleteSession(context.Background())
	require.ErrorIs(t, err, ErrExecutingStatement)
}

func TestSessionRepository_SQLiteRoundTrip(t *testing.T) {
	l := logger.Nop()
	db, err := NewConnectSQLite(context.Background(), config.ClientDB{DSN: ":memory:"}, l)
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, db.Migrate())

	repo := NewSessionRepository(db, l)
	ctx := context.Background()

	_, err = repo.LoadSession(ctx)
	require.ErrorIs(t, err, ErrLocalSessionNotFound)

	first := testSession()
	require.NoError(t, repo.SaveSession(ctx, first))

	second := testSession()
	second.Token = "other.token.sig"
	second.Account.Name = "bob"
	require.NoError(t, repo.SaveSession(ctx, second))

	got, err := repo.LoadSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "other.token.sig", got.Token)
	assert.Equal(t, "bob", got.Account.Name)
	assert.True(t, second.ExpiresAt.Equal(got.ExpiresAt))

	require.NoError(t, repo.DeleteSession(ctx))
	require.NoError(t, repo.DeleteSession(ctx))
	_, err = repo.LoadSession(ctx)
	require.ErrorIs(t, err, ErrLocalSessionNotFound)
}
