// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validClientConfig() *ClientConfig {
	return newClientConfig(defaultConfig())
}

func TestClientConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *ClientConfig)
		wantErr error
	}{
		{name: "defaults are valid", mutate: func(c *ClientConfig) {}},
		{name: "empty address", mutate: func(c *ClientConfig) { c.Adapter.HTTPAddress = "" }, wantErr: ErrInvalidAdapterConfigs},
		{name: "zero timeout", mutate: func(c *ClientConfig) { c.Adapter.RequestTimeout = 0 }, wantErr: ErrInvalidAdapterConfigs},
		{name: "empty dsn", mutate: func(c *ClientConfig) { c.Storage.DB.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "empty downloads dir", mutate: func(c *ClientConfig) { c.Storage.DownloadsDir = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "negative refresh", mutate: func(c *ClientConfig) { c.Workers.RefreshInterval = -time.Second }, wantErr: ErrInvalidWorkerConfigs},
		{name: "zero per page", mutate: func(c *ClientConfig) { c.Catalog.PerPage = 0 }, wantErr: ErrInvalidCatalogConfigs},
		{name: "per page above limit", mutate: func(c *ClientConfig) { c.Catalog.PerPage = MaxPerPage + 1 }, wantErr: ErrInvalidCatalogConfigs},
		{name: "zero cache size", mutate: func(c *ClientConfig) { c.Catalog.DetailCacheSize = 0 }, wantErr: ErrInvalidCatalogConfigs},
		{name: "zero cache ttl", mutate: func(c *ClientConfig) { c.Catalog.DetailCacheTTL = 0 }, wantErr: ErrInvalidCatalogConfigs},
		{name: "preview server disabled", mutate: func(c *ClientConfig) { c.Server.HTTPAddress = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validClientConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
