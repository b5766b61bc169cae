// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os/signal"
	"syscall"

	"github.com/spf13/afero"

	"github.com/MKhiriev/macro-marketplace/internal/adapter"
	"github.com/MKhiriev/macro-marketplace/internal/blob"
	"github.com/MKhiriev/macro-marketplace/internal/config"
	"github.com/MKhiriev/macro-marketplace/internal/handler"
	"github.com/MKhiriev/macro-marketplace/internal/logger"
	"github.com/MKhiriev/macro-marketplace/internal/metrics"
	"github.com/MKhiriev/macro-marketplace/internal/server"
	"github.com/MKhiriev/macro-marketplace/internal/service"
	"github.com/MKhiriev/macro-marketplace/internal/store"
	"github.com/MKhiriev/macro-marketplace/internal/tui"
	"github.com/MKhiriev/macro-marketplace/models"
)

// App is the marketplace client process: the stores, the services, the
// local preview server and the terminal UI.
type App struct {
	cfg      *config.ClientConfig
	storages *store.ClientStorages
	services *service.ClientServices
	server   server.Server
	ui       *tui.TUI
	logger   *logger.Logger
}

// NewApp wires the client from cfg. Without a preview server address the
// preview URLs use the blob: scheme and are only shown, not served.
func NewApp(cfg *config.ClientConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	if cfg == nil {
		return nil, ErrNoConfig
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, buildInfo, logger)
	if err != nil {
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	storages, err := store.NewClientStorages(cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("create client storages: %w", err)
	}
	metrics.InstrumentCatalog(storages.Catalog)

	app := &App{cfg: cfg, storages: storages, logger: logger}

	var (
		ln       net.Listener
		blobBase string
	)
	if cfg.Server.HTTPAddress != "" {
		if ln, err = server.Listen(cfg.Server); err != nil {
			_ = storages.Close()
			return nil, fmt.Errorf("listen preview server: %w", err)
		}
		blobBase = server.BaseURLOf(ln)
	}

	blobs := blob.NewRegistry(blobBase)
	app.services = service.NewClientServices(storages, serverAdapter, blobs, afero.NewOsFs(), cfg, logger)

	if ln != nil {
		if app.server, err = newPreviewServer(ln, blobs, buildInfo, logger); err != nil {
			_ = ln.Close()
			_ = storages.Close()
			return nil, err
		}
	}

	app.ui, err = tui.New(app.services, storages, afero.NewOsFs(), buildInfo, logger)
	if err != nil {
		app.close()
		return nil, fmt.Errorf("create ui: %w", err)
	}

	return app, nil
}

// Run restores the previous session, loads the catalog, starts the
// background refresh and shows the UI until the user quits or the process is
// interrupted.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	defer a.close()

	if a.server != nil {
		go a.server.RunServer()
		a.logger.Info().Str("addr", a.server.BaseURL()).Msg("preview server started")
	}

	if a.services.SessionService.ProbeSession(ctx) {
		a.logger.Info().Msg("previous session restored")
	}

	status, err := a.bootstrap(ctx)
	if err != nil {
		return err
	}

	a.services.RefreshJob.Start(ctx, a.cfg.Workers.RefreshInterval)
	defer a.services.RefreshJob.Stop()

	return a.ui.Run(ctx, status)
}

func (a *App) bootstrap(ctx context.Context) (string, error) {
	source, err := a.services.CatalogService.Bootstrap(ctx)
	if err != nil {
		if errors.Is(err, service.ErrNoFallbackData) {
			return "", fmt.Errorf("load catalog: %w", err)
		}
		a.logger.Err(err).Str("func", "App.bootstrap").Msg("catalog bootstrap failed")
		return service.UserMessage(err), nil
	}

	a.logger.Info().Str("source", string(source)).Msg("catalog loaded")
	switch source {
	case models.BootstrapSnapshot:
		return "Marketplace unreachable, showing the last saved catalog.", nil
	case models.BootstrapBundled:
		return "Marketplace unreachable, showing the built-in catalog.", nil
	}
	return "", nil
}

func newPreviewServer(ln net.Listener, blobs *blob.Registry, buildInfo models.AppBuildInfo, logger *logger.Logger) (server.Server, error) {
	handlers, err := handler.NewHandlers(blobs, buildInfo, logger)
	if err != nil {
		return nil, fmt.Errorf("create handlers: %w", err)
	}
	srv, err := server.NewServer(handlers, ln, logger)
	if err != nil {
		return nil, fmt.Errorf("create preview server: %w", err)
	}
	return srv, nil
}

func (a *App) close() {
	if a.server != nil {
		a.server.Shutdown()
	}
	if err := a.storages.Close(); err != nil {
		a.logger.Err(err).Str("func", "App.close").Msg("error closing storages")
	}
}
