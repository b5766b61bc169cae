// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/macro-marketplace/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientCatalogService is the client side of the remote catalog. Every
// successful call pushes its effect into the catalog cache; a failed call
// leaves the cache exactly as it was.
type ClientCatalogService interface {
	// Bootstrap performs the first catalog load. If the backend cannot be
	// reached it falls back to the local snapshot and then to the bundled
	// dataset, so the cache is never left empty by an outage.
	Bootstrap(ctx context.Context) (models.BootstrapSource, error)

	// FetchPage loads one page of the public catalog into the cache.
	// perPage <= 0 selects the configured page size.
	FetchPage(ctx context.Context, page, perPage int) (models.CatalogPage, error)

	// Search loads one page of search results into the cache.
	Search(ctx context.Context, query models.SearchQuery) (models.CatalogPage, error)

	// MyMacros loads one page of the logged-in account's macros into the cache.
	MyMacros(ctx context.Context, page, perPage int) (models.CatalogPage, error)

	// Random loads up to count random macros into the cache.
	Random(ctx context.Context, count int) ([]models.MacroRecord, error)

	// Refresh repeats the last list request.
	Refresh(ctx context.Context) error

	// FetchByID returns a single macro without touching the cache.
	FetchByID(ctx context.Context, id string) (models.MacroRecord, error)

	// Create uploads a new macro and prepends the confirmed record.
	Create(ctx context.Context, macro models.NewMacro) (models.MacroRecord, error)

	// Update sends the fields set in patch and replaces the cached record.
	Update(ctx context.Context, id string, patch models.MacroPatch) (models.MacroRecord, error)

	// Delete removes a macro on the backend and then from the cache.
	Delete(ctx context.Context, id string) error

	// Download saves the package of a macro and returns the saved path.
	Download(ctx context.Context, id string) (string, error)

	// DirectLink returns the backend URL of a single macro.
	DirectLink(id string) string
}

// ClientSessionService drives the session state.
type ClientSessionService interface {
	// Login authenticates and makes account the current one.
	Login(ctx context.Context, creds models.Credentials) (models.Account, error)

	// Register creates an account and logs into it.
	Register(ctx context.Context, creds models.Credentials) (models.Account, error)

	// Logout ends the session. The session state is cleared once the
	// backend confirmed or no longer knows the session.
	Logout(ctx context.Context) error

	// ProbeSession restores a previous login if the backend still accepts
	// it. Any failure leaves the client logged out and is not reported.
	ProbeSession(ctx context.Context) bool

	// UpdateAccount changes the name and/or password of the current account.
	UpdateAccount(ctx context.Context, update models.AccountUpdate) (models.Account, error)
}

// ClientRefreshJob periodically repeats the last catalog list request.
type ClientRefreshJob interface {
	// Start launches the job. A running job is stopped first.
	Start(ctx context.Context, interval time.Duration)

	// Stop cancels the job and waits for it to exit.
	Stop()
}

// DownloadSaver stores downloaded packages.
type DownloadSaver interface {
	// Save writes data under name and returns the path it was written to.
	// An existing file is never overwritten.
	Save(name string, data []byte) (string, error)
}

// FallbackLoader provides catalog records that need no network access.
type FallbackLoader interface {
	Load(ctx context.Context) ([]models.MacroRecord, error)
}
