// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/MKhiriev/macro-marketplace/internal/blob"
	"github.com/MKhiriev/macro-marketplace/internal/logger"
	"github.com/MKhiriev/macro-marketplace/models"
)

// BlobSource resolves registered preview blobs by id.
type BlobSource interface {
	Get(id string) (blob.Object, bool)
}

type Handler struct {
	blobs     BlobSource
	buildInfo models.AppBuildInfo
	metrics   http.Handler

	logger *logger.Logger
}

func NewHandler(blobs BlobSource, buildInfo models.AppBuildInfo, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		blobs:     blobs,
		buildInfo: buildInfo,
		metrics:   promhttp.Handler(),
		logger:    logger,
	}
}
