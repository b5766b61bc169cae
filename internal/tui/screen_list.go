// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/macro-marketplace/models"
)

func (m model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit

	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.records)-1 {
			m.idx++
		}

	case key.Matches(msg, keys.nextPage):
		if m.page.Pages > 0 && m.page.CurrentPage >= m.page.Pages {
			return m, nil
		}
		return m.loadPage(max(m.page.CurrentPage, 1) + 1)
	case key.Matches(msg, keys.prevPage):
		if m.page.CurrentPage <= 1 {
			return m, nil
		}
		return m.loadPage(m.page.CurrentPage - 1)

	case key.Matches(msg, keys.enter):
		rec, ok := m.current()
		if !ok {
			return m, nil
		}
		m.screen = screenDetail
		m.detail = rec
		m.confirmDelete = false
		if _, err := strconv.ParseInt(rec.ID, 10, 64); err != nil {
			// bundled records are not known to the backend
			return m, nil
		}
		return m, m.cmdFetchDetail(rec.ID)

	case key.Matches(msg, keys.search):
		m.screen = screenSearch
		return m, m.search.Focus()

	case key.Matches(msg, keys.refresh):
		m.busy = true
		return m, m.cmdRefresh()

	case key.Matches(msg, keys.random):
		m.busy = true
		m.source = sourceRandom
		return m, m.cmdRandom()

	case key.Matches(msg, keys.mine):
		if m.account == nil {
			m.fail(msgLoginToList)
			return m, nil
		}
		m.source = sourceMine
		return m.loadPage(1)

	case key.Matches(msg, keys.upload):
		if m.account == nil {
			m.fail(msgLoginToUpload)
			return m, nil
		}
		m.screen = screenUpload
		return m, m.upload.focusCurrent()

	case key.Matches(msg, keys.login):
		m.screen = screenLogin
		return m, m.login.focusCurrent()

	case key.Matches(msg, keys.logout):
		if m.account == nil {
			return m, nil
		}
		m.busy = true
		return m, m.cmdLogout()

	case key.Matches(msg, keys.version):
		m.screen = screenAbout

	case key.Matches(msg, keys.esc):
		if m.source != sourceAll {
			m.source = sourceAll
			return m.loadPage(1)
		}
	}
	return m, nil
}

// loadPage requests page of the current list source.
func (m model) loadPage(page int) (tea.Model, tea.Cmd) {
	m.busy = true
	switch m.source {
	case sourceSearch:
		q := m.query
		q.Page = page
		return m, m.cmdSearch(q)
	case sourceMine:
		return m, m.cmdMine(page)
	case sourceRandom:
		return m, m.cmdRandom()
	default:
		return m, m.cmdFetchPage(page)
	}
}

func (m model) viewList() string {
	var b strings.Builder

	if len(m.records) == 0 {
		b.WriteString("No macros to show.\n")
	}
	for i, rec := range m.records {
		line := fmt.Sprintf("%-34s %-11s %s",
			fitText(rec.Name, 34),
			categoryLabel(rec.Category),
			fitText(valueOrDash(rec.AuthorName), 16),
		)
		if i == m.idx {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.listCaption())

	hotKeys := "enter: open  n/p: page  /: search  r: refresh  R: random  v: about  q: quit"
	if m.account != nil {
		hotKeys = "enter: open  n/p: page  /: search  r: refresh  R: random  m: mine  u: upload  o: logout  q: quit"
	} else {
		hotKeys += "  L: login"
	}
	return renderPage(m.header(), b.String()+m.footer(), hotKeys)
}

func (m model) listCaption() string {
	switch m.source {
	case sourceSearch:
		return fmt.Sprintf("search results, page %d of %d (esc: back to all)", max(m.page.CurrentPage, 1), max(m.page.Pages, 1))
	case sourceMine:
		return fmt.Sprintf("my macros, page %d of %d (esc: back to all)", max(m.page.CurrentPage, 1), max(m.page.Pages, 1))
	case sourceRandom:
		return "random pick (esc: back to all)"
	default:
		return fmt.Sprintf("page %d of %d, %d macros", max(m.page.CurrentPage, 1), max(m.page.Pages, 1), max(m.page.Total, len(m.records)))
	}
}

func categoryLabel(c models.Category) string {
	if c == models.CategoryNone {
		return "-"
	}
	return string(c)
}

// header is the page title with the session and activity indicators.
func (m model) header() string {
	title := "MACRO MARKETPLACE"
	if m.account != nil {
		title += "  ·  " + m.account.Name
	} else {
		title += "  ·  not logged in"
	}
	if m.busy {
		title += "  " + m.spinner.View()
	}
	return title
}

func (m model) footer() string {
	switch {
	case m.errMsg != "":
		return "\n" + errorStyle.Render(m.errMsg)
	case m.status != "":
		return "\n" + statusStyle.Render(m.status)
	}
	return ""
}

// focusInput is shared by the forms: it blurs all inputs but the focused one.
func focusInput(inputs []textinput.Model, focus int) tea.Cmd {
	var cmd tea.Cmd
	for i := range inputs {
		if i == focus {
			cmd = inputs[i].Focus()
			continue
		}
		inputs[i].Blur()
	}
	return cmd
}
