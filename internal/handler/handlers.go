// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"github.com/MKhiriev/macro-marketplace/internal/handler/http"
	"github.com/MKhiriev/macro-marketplace/internal/logger"
	"github.com/MKhiriev/macro-marketplace/models"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(blobs http.BlobSource, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if blobs == nil {
		return nil, errNoBlobSource
	}

	return &Handlers{HTTP: http.NewHandler(blobs, buildInfo, logger)}, nil
}
