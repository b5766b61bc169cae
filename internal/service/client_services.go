// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/spf13/afero"

	"github.com/MKhiriev/macro-marketplace/internal/adapter"
	"github.com/MKhiriev/macro-marketplace/internal/archive"
	"github.com/MKhiriev/macro-marketplace/internal/blob"
	"github.com/MKhiriev/macro-marketplace/internal/config"
	"github.com/MKhiriev/macro-marketplace/internal/logger"
	"github.com/MKhiriev/macro-marketplace/internal/store"
)

// ClientServices groups the services of the client application.
type ClientServices struct {
	CatalogService ClientCatalogService
	SessionService ClientSessionService
	UploadDraft    *UploadDraft
	RefreshJob     ClientRefreshJob
}

// NewClientServices wires the services to the backend adapter, the client
// storages and the object URL registry. Downloads are written to
// cfg.Storage.DownloadsDir on fs.
func NewClientServices(
	storages *store.ClientStorages,
	serverAdapter adapter.ServerAdapter,
	blobs *blob.Registry,
	fs afero.Fs,
	cfg *config.ClientConfig,
	logger *logger.Logger,
) *ClientServices {
	catalogSvc := NewClientCatalogService(
		serverAdapter,
		storages,
		NewBundledFallback(serverAdapter.BaseURL()),
		NewDownloadSaver(fs, cfg.Storage.DownloadsDir),
		cfg.Catalog,
		logger,
	)

	return &ClientServices{
		CatalogService: catalogSvc,
		SessionService: NewClientSessionService(serverAdapter, storages, logger),
		UploadDraft:    NewUploadDraft(catalogSvc, archive.NewIngestor(logger), blobs, logger),
		RefreshJob:     NewClientRefreshJob(catalogSvc, logger),
	}
}
