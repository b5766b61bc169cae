// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/macro-marketplace/internal/blob"
	"github.com/MKhiriev/macro-marketplace/internal/logger"
	"github.com/MKhiriev/macro-marketplace/models"
)

const testServerBase = "http://127.0.0.1:8089"

func newTestServer(t *testing.T) (*httptest.Server, *blob.Registry) {
	t.Helper()
	blobs := blob.NewRegistry(testServerBase)
	h := NewHandler(blobs, models.NewAppBuildInfo("1.2.0", "2026-01-15", "abc123"), logger.Nop())

	srv := httptest.NewServer(h.Init())
	t.Cleanup(srv.Close)
	return srv, blobs
}

// localPath turns a registry URL into a path on the test server.
func localPath(t *testing.T, url string) string {
	t.Helper()
	require.True(t, strings.HasPrefix(url, testServerBase), url)
	return strings.TrimPrefix(url, testServerBase)
}

func TestHandler_ServeBlob(t *testing.T) {
	srv, blobs := newTestServer(t)

	data := []byte("\x89PNG\r\n\x1a\nfake image")
	url := blobs.Create(data, "image/png")

	resp, err := http.Get(srv.URL + localPath(t, url))
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))
	assert.Equal(t, "no-store", resp.Header.Get("Cache-Control"))
	assert.Equal(t, blobCSP, resp.Header.Get("Content-Security-Policy"))
	assert.NotEmpty(t, resp.Header.Get(traceIDHeader))
	assert.Equal(t, data, body)
}

func TestHandler_ServeBlob_SVGIsSandboxed(t *testing.T) {
	srv, blobs := newTestServer(t)
	svg := []byte(`<svg xmlns="http://www.w3.org/2000/svg"><script>alert(1)</script></svg>`)
	url := blobs.Create(svg, "image/svg+xml")

	resp, err := http.Get(srv.URL + localPath(t, url))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/svg+xml", resp.Header.Get("Content-Type"))
	assert.Equal(t, "nosniff", resp.Header.Get("X-Content-Type-Options"))
	csp := resp.Header.Get("Content-Security-Policy")
	assert.Contains(t, csp, "default-src 'none'")
	assert.Contains(t, csp, "sandbox")
	assert.NotContains(t, csp, "script-src")
}

func TestHandler_ServeBlob_Range(t *testing.T) {
	srv, blobs := newTestServer(t)
	url := blobs.Create([]byte("0123456789"), "video/mp4")

	req, err := http.NewRequest(http.MethodGet, srv.URL+localPath(t, url), nil)
	require.NoError(t, err)
	req.Header.Set("Range", "bytes=2-5")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusPartialContent, resp.StatusCode)
	assert.Equal(t, "2345", string(body))
}

func TestHandler_ServeBlob_Revoked(t *testing.T) {
	srv, blobs := newTestServer(t)
	url := blobs.Create([]byte("x"), "image/gif")
	blobs.Revoke(url)

	resp, err := http.Get(srv.URL + localPath(t, url))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHandler_ServeBlob_Head(t *testing.T) {
	srv, blobs := newTestServer(t)
	url := blobs.Create([]byte("abcdef"), "image/webp")

	resp, err := http.Head(srv.URL + localPath(t, url))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int64(6), resp.ContentLength)
}

func TestHandler_Version(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/version")
	require.NoError(t, err)
	defer resp.Body.Close()

	var got versionResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	assert.Equal(t, versionResponse{Version: "1.2.0", Date: "2026-01-15", Commit: "abc123"}, got)
}

func TestHandler_Health(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", string(body))
}

func TestHandler_Metrics(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "go_goroutines")
}

func TestHandler_UnsupportedMethods(t *testing.T) {
	srv, blobs := newTestServer(t)
	url := blobs.Create([]byte("x"), "image/png")

	tests := []struct {
		name   string
		method string
		path   string
	}{
		{"POST version", http.MethodPost, "/version"},
		{"DELETE metrics", http.MethodDelete, "/metrics"},
		{"PUT blob", http.MethodPut, localPath(t, url)},
		{"unknown path", http.MethodGet, "/api/makros"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest(tt.method, srv.URL+tt.path, nil)
			require.NoError(t, err)

			resp, err := http.DefaultClient.Do(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		})
	}
}
