// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/afero"

	"github.com/MKhiriev/macro-marketplace/models"
)

func (m model) cmdFetchPage(page int) tea.Cmd {
	ctx, catalog := m.ctx, m.catalog
	return func() tea.Msg {
		result, err := catalog.FetchPage(ctx, page, 0)
		if err != nil {
			return opDoneMsg{err: err}
		}
		return pageMsg{page: result}
	}
}

func (m model) cmdSearch(query models.SearchQuery) tea.Cmd {
	ctx, catalog := m.ctx, m.catalog
	return func() tea.Msg {
		result, err := catalog.Search(ctx, query)
		if err != nil {
			return opDoneMsg{err: err}
		}
		return pageMsg{page: result}
	}
}

func (m model) cmdMine(page int) tea.Cmd {
	ctx, catalog := m.ctx, m.catalog
	return func() tea.Msg {
		result, err := catalog.MyMacros(ctx, page, 0)
		if err != nil {
			return opDoneMsg{err: err}
		}
		return pageMsg{page: result}
	}
}

func (m model) cmdRandom() tea.Cmd {
	ctx, catalog := m.ctx, m.catalog
	return func() tea.Msg {
		records, err := catalog.Random(ctx, 0)
		if err != nil {
			return opDoneMsg{err: err}
		}
		return pageMsg{page: models.CatalogPage{Records: records, Total: len(records), Pages: 1, CurrentPage: 1}}
	}
}

func (m model) cmdRefresh() tea.Cmd {
	ctx, catalog := m.ctx, m.catalog
	return func() tea.Msg {
		return opDoneMsg{status: "Catalog refreshed.", err: catalog.Refresh(ctx)}
	}
}

func (m model) cmdFetchDetail(id string) tea.Cmd {
	ctx, catalog := m.ctx, m.catalog
	return func() tea.Msg {
		rec, err := catalog.FetchByID(ctx, id)
		return detailMsg{record: rec, err: err}
	}
}

func (m model) cmdDownload(id string) tea.Cmd {
	ctx, catalog := m.ctx, m.catalog
	return func() tea.Msg {
		path, err := catalog.Download(ctx, id)
		if err != nil {
			return opDoneMsg{err: err}
		}
		return opDoneMsg{status: "Saved to " + path}
	}
}

func (m model) cmdDelete(id string) tea.Cmd {
	ctx, catalog := m.ctx, m.catalog
	return func() tea.Msg {
		return deletedMsg{id: id, err: catalog.Delete(ctx, id)}
	}
}

func (m model) cmdLogin(creds models.Credentials, register bool) tea.Cmd {
	ctx, session := m.ctx, m.session
	return func() tea.Msg {
		var (
			account models.Account
			err     error
		)
		if register {
			account, err = session.Register(ctx, creds)
		} else {
			account, err = session.Login(ctx, creds)
		}
		return loggedInMsg{account: account, err: err}
	}
}

func (m model) cmdLogout() tea.Cmd {
	ctx, session := m.ctx, m.session
	return func() tea.Msg {
		return opDoneMsg{status: "Logged out.", err: session.Logout(ctx)}
	}
}

func (m model) cmdSelectPackage(path string) tea.Cmd {
	fs, draft := m.fs, m.draft
	return func() tea.Msg {
		data, err := readLocalFile(fs, path)
		if err != nil {
			return draftMsg{err: err}
		}
		if _, err = draft.SelectPackage(filepath.Base(path), data); err != nil {
			return draftMsg{err: err}
		}
		return draftMsg{state: draft.State()}
	}
}

func (m model) cmdSelectPreview(path string) tea.Cmd {
	fs, draft := m.fs, m.draft
	return func() tea.Msg {
		data, err := readLocalFile(fs, path)
		if err != nil {
			return draftMsg{err: err}
		}
		if _, err = draft.SelectPreview(filepath.Base(path), data); err != nil {
			return draftMsg{err: err}
		}
		return draftMsg{state: draft.State()}
	}
}

func (m model) cmdSubmit() tea.Cmd {
	ctx, draft := m.ctx, m.draft
	return func() tea.Msg {
		rec, err := draft.Submit(ctx)
		return uploadedMsg{record: rec, err: err}
	}
}

func readLocalFile(fs afero.Fs, path string) ([]byte, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errEmptyPath
	}
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}
