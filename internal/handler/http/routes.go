// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Get("/blob/{id}", h.serveBlob)
	router.Head("/blob/{id}", h.serveBlob)

	router.Get("/version", h.getVersion)
	router.Get("/healthz", h.health)
	router.Method("GET", "/metrics", h.metrics)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
