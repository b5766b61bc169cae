// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/afero"

	"github.com/MKhiriev/macro-marketplace/internal/service"
	"github.com/MKhiriev/macro-marketplace/models"
)

type screen int

const (
	screenList screen = iota
	screenDetail
	screenSearch
	screenUpload
	screenLogin
	screenAbout
)

// listSource is the request that filled the list; paging repeats it.
type listSource int

const (
	sourceAll listSource = iota
	sourceSearch
	sourceMine
	sourceRandom
)

type model struct {
	ctx       context.Context
	catalog   service.ClientCatalogService
	session   service.ClientSessionService
	draft     *service.UploadDraft
	fs        afero.Fs
	copyText  func(string) error
	buildInfo models.AppBuildInfo

	catalogFeed *feed[[]models.MacroRecord]
	sessionFeed *feed[*models.Account]

	screen  screen
	records []models.MacroRecord
	idx     int
	page    models.CatalogPage
	source  listSource
	query   models.SearchQuery
	account *models.Account

	detail        models.MacroRecord
	confirmDelete bool

	search textinput.Model
	login  loginForm
	upload uploadForm

	busy    bool
	spinner spinner.Model
	status  string
	errMsg  string
}

func newModel(ctx context.Context, deps modelDeps) model {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	search := textinput.New()
	search.Placeholder = "text  category:Excel  author:name"
	search.Width = 48

	return model{
		ctx:         ctx,
		catalog:     deps.catalog,
		session:     deps.session,
		draft:       deps.draft,
		fs:          deps.fs,
		copyText:    deps.copyText,
		buildInfo:   deps.buildInfo,
		catalogFeed: deps.catalogFeed,
		sessionFeed: deps.sessionFeed,
		search:      search,
		login:       newLoginForm(),
		upload:      newUploadForm(),
		spinner:     s,
		status:      deps.status,
		page:        models.CatalogPage{CurrentPage: 1},
	}
}

// modelDeps groups what the model needs from the outside.
type modelDeps struct {
	catalog     service.ClientCatalogService
	session     service.ClientSessionService
	draft       *service.UploadDraft
	fs          afero.Fs
	copyText    func(string) error
	buildInfo   models.AppBuildInfo
	catalogFeed *feed[[]models.MacroRecord]
	sessionFeed *feed[*models.Account]
	status      string
}

func (m model) Init() tea.Cmd {
	return tea.Batch(
		m.catalogFeed.next(m.ctx, wrapCatalog),
		m.sessionFeed.next(m.ctx, wrapSession),
		m.spinner.Tick,
	)
}

func wrapCatalog(records []models.MacroRecord) tea.Msg {
	return catalogMsg{records: records}
}

func wrapSession(account *models.Account) tea.Msg {
	return sessionMsg{account: account}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case catalogMsg:
		m.records = msg.records
		m.idx = clampIndex(m.idx, len(m.records))
		return m, m.catalogFeed.next(m.ctx, wrapCatalog)

	case sessionMsg:
		m.account = msg.account
		return m, m.sessionFeed.next(m.ctx, wrapSession)

	case pageMsg:
		m.busy = false
		m.page = msg.page
		m.errMsg = ""
		return m, nil

	case opDoneMsg:
		m.busy = false
		m.setResult(msg.status, msg.err)
		return m, nil

	case detailMsg:
		m.busy = false
		if msg.err != nil {
			m.setResult("", msg.err)
			return m, nil
		}
		if m.screen == screenDetail && m.detail.ID == msg.record.ID {
			m.detail = msg.record
		}
		return m, nil

	case deletedMsg:
		m.busy = false
		m.confirmDelete = false
		if msg.err != nil {
			m.setResult("", msg.err)
			return m, nil
		}
		if m.screen == screenDetail && m.detail.ID == msg.id {
			m.screen = screenList
		}
		m.setResult("Macro deleted.", nil)
		return m, nil

	case draftMsg:
		m.busy = false
		if msg.err != nil {
			m.setResult("", msg.err)
			return m, nil
		}
		m.upload.fill(msg.state)
		m.setResult("", nil)
		return m, nil

	case loggedInMsg:
		m.busy = false
		if msg.err != nil {
			m.setResult("", msg.err)
			return m, nil
		}
		m.login = newLoginForm()
		m.screen = screenList
		m.setResult("Logged in as "+msg.account.Name+".", nil)
		return m, nil

	case uploadedMsg:
		m.busy = false
		if msg.err != nil {
			m.setResult("", msg.err)
			return m, nil
		}
		m.upload = newUploadForm()
		m.screen = screenList
		m.idx = 0
		m.setResult("Uploaded \""+msg.record.Name+"\".", nil)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.screen {
		case screenList:
			return m.updateList(msg)
		case screenDetail:
			return m.updateDetail(msg)
		case screenSearch:
			return m.updateSearch(msg)
		case screenUpload:
			return m.updateUpload(msg)
		case screenLogin:
			return m.updateLogin(msg)
		case screenAbout:
			if key.Matches(msg, keys.esc) || key.Matches(msg, keys.version) {
				m.screen = screenList
			}
			return m, nil
		}
	}
	return m, nil
}

// setResult shows status on success and the user message of err otherwise.
// Superseded list responses are not failures and stay silent.
func (m *model) setResult(status string, err error) {
	switch {
	case err == nil:
		m.status = status
		m.errMsg = ""
	case errors.Is(err, service.ErrStaleResult):
	default:
		m.status = ""
		m.errMsg = service.UserMessage(err)
	}
}

func (m *model) fail(text string) {
	m.status = ""
	m.errMsg = text
}

func (m model) current() (models.MacroRecord, bool) {
	if m.idx < 0 || m.idx >= len(m.records) {
		return models.MacroRecord{}, false
	}
	return m.records[m.idx], true
}

func clampIndex(idx, n int) int {
	if idx >= n {
		idx = n - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}
