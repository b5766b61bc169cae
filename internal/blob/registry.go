// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package blob keeps in-memory previews addressable by URL until their owner
// revokes them. URLs are served by the local preview server.
package blob

import (
	"strings"
	"sync"

	"github.com/MKhiriev/macro-marketplace/internal/utils"
)

const (
	pathPrefix = "/blob/"

	// schemePrefix is used when no preview server address is configured.
	schemePrefix = "blob:"
)

// Object is a registered blob.
type Object struct {
	Data     []byte
	MIMEType string
}

// Registry maps object URLs to in-memory blobs.
type Registry struct {
	mu      sync.RWMutex
	base    string
	objects map[string]Object
	ids     *utils.UUIDGenerator
}

// NewRegistry returns a Registry whose URLs start with baseURL, for example
// http://127.0.0.1:8089. An empty baseURL yields opaque blob: URLs.
func NewRegistry(baseURL string) *Registry {
	return &Registry{
		base:    strings.TrimRight(baseURL, "/"),
		objects: make(map[string]Object),
		ids:     utils.NewUUIDGenerator(),
	}
}

// Create registers a copy of data and returns its URL.
func (r *Registry) Create(data []byte, mimeType string) string {
	id := r.ids.Generate()
	obj := Object{Data: append([]byte(nil), data...), MIMEType: mimeType}

	r.mu.Lock()
	r.objects[id] = obj
	r.mu.Unlock()

	if r.base == "" {
		return schemePrefix + id
	}
	return r.base + pathPrefix + id
}

// Resolve returns the blob behind url.
func (r *Registry) Resolve(url string) (Object, bool) {
	id, ok := r.idFromURL(url)
	if !ok {
		return Object{}, false
	}
	return r.Get(id)
}

// Get returns the blob registered under id.
func (r *Registry) Get(id string) (Object, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	obj, ok := r.objects[id]
	return obj, ok
}

// Revoke releases the blob behind url. Unknown or already revoked URLs are
// ignored.
func (r *Registry) Revoke(url string) {
	id, ok := r.idFromURL(url)
	if !ok {
		return
	}

	r.mu.Lock()
	delete(r.objects, id)
	r.mu.Unlock()
}

// Len returns the number of live blobs.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.objects)
}

func (r *Registry) idFromURL(url string) (string, bool) {
	var id string
	switch {
	case r.base == "" && strings.HasPrefix(url, schemePrefix):
		id = strings.TrimPrefix(url, schemePrefix)
	case r.base != "" && strings.HasPrefix(url, r.base+pathPrefix):
		id = strings.TrimPrefix(url, r.base+pathPrefix)
	default:
		return "", false
	}
	return id, id != ""
}
