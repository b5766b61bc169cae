// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/afero"

	"github.com/MKhiriev/macro-marketplace/internal/logger"
	"github.com/MKhiriev/macro-marketplace/internal/service"
	"github.com/MKhiriev/macro-marketplace/internal/store"
	"github.com/MKhiriev/macro-marketplace/models"
)

// TUI is the terminal front end of the marketplace. It renders whatever the
// catalog and session stores emit and calls the services on user input.
type TUI struct {
	services  *service.ClientServices
	storages  *store.ClientStorages
	fs        afero.Fs
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

// New returns a TUI bound to services and the observable stores in storages.
// Upload paths are read from fs.
func New(services *service.ClientServices, storages *store.ClientStorages, fs afero.Fs, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil || storages == nil {
		return nil, ErrNoServices
	}
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &TUI{
		services:  services,
		storages:  storages,
		fs:        fs,
		buildInfo: buildInfo,
		logger:    logger,
	}, nil
}

// Run shows the UI until the user quits or ctx is done. status is shown in
// the status line of the first screen.
func (t *TUI) Run(ctx context.Context, status string) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	catalogFeed := newFeed[[]models.MacroRecord]()
	sessionFeed := newFeed[*models.Account]()

	unsubscribeCatalog := t.storages.Catalog.Subscribe(catalogFeed.push)
	defer unsubscribeCatalog()
	unsubscribeSession := t.storages.Session.Subscribe(sessionFeed.push)
	defer unsubscribeSession()

	m := newModel(ctx, modelDeps{
		catalog:     t.services.CatalogService,
		session:     t.services.SessionService,
		draft:       t.services.UploadDraft,
		fs:          t.fs,
		copyText:    clipboard.WriteAll,
		buildInfo:   t.buildInfo,
		catalogFeed: catalogFeed,
		sessionFeed: sessionFeed,
		status:      status,
	})

	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		t.logger.Err(err).Str("func", "TUI.Run").Msg("ui stopped with error")
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
