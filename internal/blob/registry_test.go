// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package blob

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_CreateResolveRevoke(t *testing.T) {
	r := NewRegistry("http://127.0.0.1:8089/")
	data := []byte("png bytes")

	url := r.Create(data, "image/png")
	require.True(t, strings.HasPrefix(url, "http://127.0.0.1:8089/blob/"))
	assert.Equal(t, 1, r.Len())

	// the registry keeps its own copy
	data[0] = 'X'

	obj, ok := r.Resolve(url)
	require.True(t, ok)
	assert.Equal(t, []byte("png bytes"), obj.Data)
	assert.Equal(t, "image/png", obj.MIMEType)

	r.Revoke(url)
	r.Revoke(url)

	_, ok = r.Resolve(url)
	assert.False(t, ok)
	assert.Equal(t, 0, r.Len())
}

func TestRegistry_UniqueURLs(t *testing.T) {
	r := NewRegistry("http://localhost:1")

	a := r.Create([]byte("a"), "image/gif")
	b := r.Create([]byte("a"), "image/gif")

	assert.NotEqual(t, a, b)
	assert.Equal(t, 2, r.Len())
}

func TestRegistry_WithoutBaseURL(t *testing.T) {
	r := NewRegistry("")

	url := r.Create([]byte("v"), "video/mp4")
	require.True(t, strings.HasPrefix(url, "blob:"))

	_, ok := r.Resolve(url)
	assert.True(t, ok)

	r.Revoke(url)
	assert.Equal(t, 0, r.Len())
}

func TestRegistry_ForeignURLsIgnored(t *testing.T) {
	r := NewRegistry("http://127.0.0.1:8089")
	r.Create([]byte("a"), "image/png")

	for _, url := range []string{
		"",
		"blob:",
		"http://127.0.0.1:8089/blob/",
		"http://example.com/blob/123",
		"https://cdn.example.com/preview.png",
	} {
		_, ok := r.Resolve(url)
		assert.False(t, ok, url)
		r.Revoke(url)
	}

	assert.Equal(t, 1, r.Len())
}
