// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// MaxPerPage is the page size limit enforced by the backend.
const MaxPerPage = 100

// validate checks the merged [StructuredConfig]. Field-level rules live in
// [ClientConfig.validate].
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Storage.DB.DSN == "" || cfg.Storage.DownloadsDir == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Workers.RefreshInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.Catalog.PerPage < 1 || cfg.Catalog.PerPage > MaxPerPage ||
		cfg.Catalog.DetailCacheSize < 1 || cfg.Catalog.DetailCacheTTL <= 0 {
		return ErrInvalidCatalogConfigs
	}

	return nil
}
