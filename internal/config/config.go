// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container of the client.
// It is populated by merging defaults, environment variables, command-line
// flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings.
	App App `envPrefix:"APP_"`

	// Adapter holds the backend endpoint and outbound request settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the local snapshot database and downloads settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the local preview server settings.
	Server Server `envPrefix:"SERVER_"`

	// Workers holds background job settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// Catalog holds pagination and lookup cache settings.
	Catalog Catalog `envPrefix:"CATALOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// EnvFile is the optional path to a dotenv file.
	// Populated via the ENV_FILE environment variable or the -env-file flag.
	EnvFile string `env:"ENV_FILE"`
}

// App holds application-level configuration values.
type App struct {
	// LogFile is the path of the client log file. Empty means "logs" next to
	// the executable.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Adapter holds the settings of the HTTP transport to the catalog backend.
type Adapter struct {
	// HTTPAddress is the backend origin (e.g. "http://localhost:5000").
	// A missing scheme defaults to http.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration of a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the local storage settings.
type Storage struct {
	// DB holds the SQLite snapshot database settings.
	DB DB `envPrefix:"DB_"`

	// Downloads holds the directory downloaded packages are saved into.
	Downloads Downloads `envPrefix:"DOWNLOADS_"`
}

// DB holds the local SQLite settings.
type DB struct {
	// DSN is the SQLite file path of the catalog snapshot database.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Downloads holds the download target settings.
type Downloads struct {
	// Dir is the directory downloaded packages are written to.
	// Env: STORAGE_DOWNLOADS_DIR
	Dir string `env:"DIR"`
}

// Server holds the local preview server settings.
type Server struct {
	// HTTPAddress is the host:port the preview and metrics server listens on.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`
}

// Workers holds configuration for background jobs.
type Workers struct {
	// RefreshInterval is how often the currently viewed catalog page is
	// re-fetched.
	// Env: WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// Catalog holds catalog paging and lookup settings.
type Catalog struct {
	// PerPage is the default page size.
	// Env: CATALOG_PER_PAGE
	PerPage int `env:"PER_PAGE"`

	// DetailCacheSize is the capacity of the by-id lookup cache.
	// Env: CATALOG_DETAIL_CACHE_SIZE
	DetailCacheSize int `env:"DETAIL_CACHE_SIZE"`

	// DetailCacheTTL is how long a by-id lookup stays cached.
	// Env: CATALOG_DETAIL_CACHE_TTL
	DetailCacheTTL time.Duration `env:"DETAIL_CACHE_TTL"`
}

// defaultConfig returns the lowest-priority configuration layer.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Adapter: Adapter{
			HTTPAddress:    "http://localhost:5000",
			RequestTimeout: 15 * time.Second,
		},
		Storage: Storage{
			DB:        DB{DSN: "marketplace.db"},
			Downloads: Downloads{Dir: "downloads"},
		},
		Server:  Server{HTTPAddress: "127.0.0.1:8089"},
		Workers: Workers{RefreshInterval: 5 * time.Minute},
		Catalog: Catalog{
			PerPage:         20,
			DetailCacheSize: 128,
			DetailCacheTTL:  time.Minute,
		},
	}
}
