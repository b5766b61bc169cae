// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer between the client and the
// macro marketplace backend.
//
// The primary abstraction is [ServerAdapter], which decouples the service
// layer from the REST protocol. It speaks the backend's wire shapes
// ([models.MakroDTO], [models.CatalogEnvelope], ...); normalization into the
// client's record shape happens in the service layer.
//
// Non-2xx responses are mapped by mapHTTPError to an [*HTTPError] wrapping one
// of the sentinels in errors.go, so callers can use [errors.Is] (e.g.
// [ErrNotFound] for 404) and still read the server's message.
package adapter

import (
	"context"

	"github.com/MKhiriev/macro-marketplace/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the marketplace backend.
type ServerAdapter interface {
	// BaseURL returns the normalized backend origin without a trailing slash.
	BaseURL() string

	// SetToken stores the bearer token attached to authenticated requests.
	// An empty token makes subsequent requests anonymous.
	SetToken(token string)

	// Token returns the stored bearer token or an empty string.
	Token() string

	// Register creates an account. It does not log in.
	Register(ctx context.Context, creds models.Credentials) (models.AccountDTO, error)

	// Login authenticates and stores the returned access token via SetToken.
	Login(ctx context.Context, creds models.Credentials) (models.AccountEnvelope, error)

	// Logout ends the session on the backend.
	Logout(ctx context.Context) error

	// GetAccount returns the account the stored token belongs to.
	GetAccount(ctx context.Context) (models.AccountDTO, error)

	// UpdateAccount changes the name and/or password of the current account.
	UpdateAccount(ctx context.Context, update models.AccountUpdate) (models.AccountDTO, error)

	// ListMakros fetches one page of the public catalog, newest first.
	ListMakros(ctx context.Context, page models.PageRequest) (models.CatalogEnvelope, error)

	// SearchMakros fetches one page of search results. Empty filters are
	// omitted from the query string.
	SearchMakros(ctx context.Context, query models.SearchQuery) (models.CatalogEnvelope, error)

	// RandomMakros fetches up to count random macros.
	RandomMakros(ctx context.Context, count int) (models.RandomEnvelope, error)

	// MyMakros fetches one page of the current account's macros.
	MyMakros(ctx context.Context, page models.PageRequest) (models.CatalogEnvelope, error)

	// GetMakro fetches a single macro.
	GetMakro(ctx context.Context, id string) (models.MakroDTO, error)

	// CreateMakro uploads a package as multipart form data.
	CreateMakro(ctx context.Context, macro models.NewMacro) (models.MakroDTO, error)

	// UpdateMakro sends only the non-nil fields of patch.
	UpdateMakro(ctx context.Context, id string, patch models.MacroPatch) (models.MakroDTO, error)

	// DeleteMakro deletes a macro owned by the current account.
	DeleteMakro(ctx context.Context, id string) error

	// DownloadMakro returns the raw package bytes.
	DownloadMakro(ctx context.Context, id string) ([]byte, error)
}
