// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/macro-marketplace/models"
)

const snapshotTable = "catalog_snapshot"

// snapshotInsertBatch keeps a single INSERT below SQLite's bound parameter limit.
const snapshotInsertBatch = 50

var snapshotColumns = []string{
	"position",
	"id",
	"name",
	"description",
	"category",
	"filename",
	"author_id",
	"author_name",
	"preview_url",
	"created_at",
	"updated_at",
	"saved_at",
}

var sqlite = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildClearSnapshotQuery() (string, []any, error) {
	return sqlite.Delete(snapshotTable).ToSql()
}

// buildInsertSnapshotQuery builds one INSERT for records, numbering them from
// offset so that the saved order survives a round trip.
func buildInsertSnapshotQuery(records []models.MacroRecord, offset int, savedAt time.Time) (string, []any, error) {
	q := sqlite.Insert(snapshotTable).Columns(snapshotColumns...)
	for i, r := range records {
		q = q.Values(
			offset+i,
			r.ID,
			r.Name,
			r.Description,
			string(r.Category),
			r.Filename,
			r.AuthorID,
			r.AuthorName,
			r.PreviewURL,
			r.CreatedAt,
			r.UpdatedAt,
			savedAt,
		)
	}
	return q.ToSql()
}

func buildSelectSnapshotQuery() (string, []any, error) {
	return sqlite.Select(snapshotColumns...).
		From(snapshotTable).
		OrderBy("position ASC").
		ToSql()
}

const sessionTable = "client_session"

// sessionSlot is the key of the single stored session row.
const sessionSlot = 1

var sessionColumns = []string{
	"slot",
	"token",
	"account_id",
	"account_name",
	"created_at",
	"expires_at",
	"saved_at",
}

func buildUpsertSessionQuery(session models.Session, savedAt time.Time) (string, []any, error) {
	expiresAt := sql.NullTime{Time: session.ExpiresAt, Valid: !session.ExpiresAt.IsZero()}
	return sqlite.Insert(sessionTable).
		Options("OR REPLACE").
		Columns(sessionColumns...).
		Values(
			sessionSlot,
			session.Token,
			session.Account.ID,
			session.Account.Name,
			session.Account.CreatedAt,
			expiresAt,
			savedAt,
		).
		ToSql()
}

func buildSelectSessionQuery() (string, []any, error) {
	return sqlite.Select("token", "account_id", "account_name", "created_at", "expires_at").
		From(sessionTable).
		Where(sq.Eq{"slot": sessionSlot}).
		ToSql()
}

func buildDeleteSessionQuery() (string, []any, error) {
	return sqlite.Delete(sessionTable).ToSql()
}
