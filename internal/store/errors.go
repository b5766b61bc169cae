// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// ErrSnapshotNotFound is returned by [SnapshotRepository.LoadSnapshot] when no
// catalog snapshot has been saved yet.
var ErrSnapshotNotFound = errors.New("catalog snapshot not found")

// ErrLocalSessionNotFound is returned by [SessionRepository.LoadSession] when
// no login has been persisted.
var ErrLocalSessionNotFound = errors.New("local session not found")

// Low-level database operation errors. Repository methods wrap them so that
// callers can tell which step failed.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when running a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the driver cannot start a
	// transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing a transaction fails.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when an INSERT or DELETE fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRows is returned when scanning a result row fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
