// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/macro-marketplace/internal/logger"
)

const blobCSP = "default-src 'none'; img-src 'self'; media-src 'self'; style-src 'unsafe-inline'; sandbox"

// serveBlob writes a registered preview. Range requests are honoured so video
// previews can be seeked.
func (h *Handler) serveBlob(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	obj, ok := h.blobs.Get(id)
	if !ok {
		logger.FromRequest(r).Debug().Str("func", "*Handler.serveBlob").Str("id", id).Msg("blob not found or revoked")
		http.NotFound(w, r)
		return
	}

	if obj.MIMEType != "" {
		w.Header().Set("Content-Type", obj.MIMEType)
	}
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	// previews may be user-supplied SVG; no scripts, no subresources
	w.Header().Set("Content-Security-Policy", blobCSP)
	http.ServeContent(w, r, "", time.Time{}, bytes.NewReader(obj.Data))
}

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	_, _ = w.Write([]byte("ok"))
}
