// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"fmt"
	"net"
	"sync"

	"github.com/MKhiriev/macro-marketplace/internal/config"
	"github.com/MKhiriev/macro-marketplace/internal/handler"
	"github.com/MKhiriev/macro-marketplace/internal/logger"
)

type server struct {
	httpServer *httpServer
	baseURL    string
	logger     *logger.Logger

	shutdownOnce sync.Once
}

// Listen binds the preview server address of cfg. A port of 0 picks a free
// port; the resulting origin is available from the listener's address.
func Listen(cfg config.ClientServer) (net.Listener, error) {
	if cfg.HTTPAddress == "" {
		return nil, errEmptyAddress
	}
	ln, err := net.Listen("tcp", cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", cfg.HTTPAddress, err)
	}
	return ln, nil
}

// BaseURLOf returns the http origin of ln.
func BaseURLOf(ln net.Listener) string {
	return "http://" + ln.Addr().String()
}

func NewServer(handlers *handler.Handlers, listener net.Listener, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil {
		return nil, errNoHandler
	}
	if listener == nil {
		return nil, errNoListener
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), listener, logger),
		baseURL:    BaseURLOf(listener),
		logger:     logger,
	}, nil
}

func (s *server) RunServer() {
	s.logger.Info().Str("addr", s.baseURL).Msg("Launching preview server")
	s.httpServer.RunServer()
}

func (s *server) Shutdown() {
	s.shutdownOnce.Do(func() {
		s.httpServer.Shutdown()
		s.logger.Info().Msg("preview server shut down gracefully")
	})
}

func (s *server) BaseURL() string {
	return s.baseURL
}
