// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	p := writeTempFile(t, "config.json", `{
		"app": {"log_file": "/var/log/client.log"},
		"adapter": {"http_address": "http://backend:5000", "request_timeout": "20s"},
		"storage": {"db": {"dsn": "snap.db"}, "downloads": {"dir": "/tmp/dl"}},
		"server": {"http_address": "127.0.0.1:9000"},
		"workers": {"refresh_interval": "2m"},
		"catalog": {"per_page": 10, "detail_cache_size": 16, "detail_cache_ttl": "30s"}
	}`)

	cfg, err := parseJSON(p)
	require.NoError(t, err)

	assert.Equal(t, "/var/log/client.log", cfg.App.LogFile)
	assert.Equal(t, "http://backend:5000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 20*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "snap.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/tmp/dl", cfg.Storage.Downloads.Dir)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, 2*time.Minute, cfg.Workers.RefreshInterval)
	assert.Equal(t, 10, cfg.Catalog.PerPage)
	assert.Equal(t, 16, cfg.Catalog.DetailCacheSize)
	assert.Equal(t, 30*time.Second, cfg.Catalog.DetailCacheTTL)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	p := writeTempFile(t, "config.json", `{"adapter": `)

	_, err := parseJSON(p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	p := writeTempFile(t, "config.json", `{"adapter": {"request_timeout": "soon"}}`)

	_, err := parseJSON(p)
	assert.Error(t, err)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	var d Duration
	require.NoError(t, json.Unmarshal([]byte(`"90s"`), &d))
	assert.Equal(t, 90*time.Second, time.Duration(d))

	require.NoError(t, json.Unmarshal([]byte(`1000000000`), &d))
	assert.Equal(t, time.Second, time.Duration(d))
}

func TestDuration_MarshalJSON(t *testing.T) {
	raw, err := json.Marshal(Duration(time.Minute))
	require.NoError(t, err)
	assert.JSONEq(t, `"1m0s"`, string(raw))
}
