// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"time"
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	// LogFile is the log file path, empty for the default location.
	LogFile string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the backend origin.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite connection string.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
	// DownloadsDir is where downloaded packages are saved.
	DownloadsDir string
}

// ClientServer holds the preview server settings.
type ClientServer struct {
	// HTTPAddress is the listen address. Empty disables the server.
	HTTPAddress string
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// RefreshInterval defines how often the catalog refresh job runs.
	RefreshInterval time.Duration
}

// ClientCatalog contains catalog paging and lookup settings.
type ClientCatalog struct {
	PerPage         int
	DetailCacheSize int
	DetailCacheTTL  time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Server  ClientServer
	Workers ClientWorkers
	Catalog ClientCatalog
}

// GetClientConfig builds and validates the client config from the process
// environment and command-line arguments.
func GetClientConfig() (*ClientConfig, error) {
	return getClientConfig(os.Args[1:])
}

func getClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withDefaults().
		withDotEnv(args).
		withEnv().
		withFlags(args).
		withJSON().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{LogFile: cfg.App.LogFile},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB:           ClientDB{DSN: cfg.Storage.DB.DSN},
			DownloadsDir: cfg.Storage.Downloads.Dir,
		},
		Server:  ClientServer{HTTPAddress: cfg.Server.HTTPAddress},
		Workers: ClientWorkers{RefreshInterval: cfg.Workers.RefreshInterval},
		Catalog: ClientCatalog{
			PerPage:         cfg.Catalog.PerPage,
			DetailCacheSize: cfg.Catalog.DetailCacheSize,
			DetailCacheTTL:  cfg.Catalog.DetailCacheTTL,
		},
	}
}
