// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.confirmDelete {
		switch {
		case key.Matches(msg, keys.yes):
			m.busy = true
			return m, m.cmdDelete(m.detail.ID)
		case key.Matches(msg, keys.no):
			m.confirmDelete = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.esc), key.Matches(msg, keys.quit):
		m.screen = screenList
	case key.Matches(msg, keys.download):
		m.busy = true
		return m, m.cmdDownload(m.detail.ID)
	case key.Matches(msg, keys.copy):
		link := m.catalog.DirectLink(m.detail.ID)
		if err := m.copyText(link); err != nil {
			m.fail("Could not copy to clipboard: " + err.Error())
			return m, nil
		}
		m.setResult("Copied "+link, nil)
	case key.Matches(msg, keys.delete):
		if m.account == nil || m.account.ID != m.detail.AuthorID {
			m.fail("Only the author can delete this macro.")
			return m, nil
		}
		m.confirmDelete = true
	}
	return m, nil
}

func (m model) viewDetail() string {
	rec := m.detail

	var b strings.Builder
	b.WriteString("Name:        " + rec.Name + "\n")
	b.WriteString("Category:    " + categoryLabel(rec.Category) + "\n")
	b.WriteString("Author:      " + valueOrDash(rec.AuthorName) + "\n")
	b.WriteString("File:        " + valueOrDash(rec.Filename) + "\n")
	b.WriteString("Created:     " + formatDate(rec.CreatedAt) + "\n")
	if !rec.UpdatedAt.IsZero() {
		b.WriteString("Updated:     " + formatDate(rec.UpdatedAt) + "\n")
	}
	if rec.PreviewURL != nil {
		b.WriteString("Preview:     " + *rec.PreviewURL + "\n")
	}
	b.WriteString("\n")
	b.WriteString(valueOrDash(rec.Description))
	b.WriteString("\n")

	if m.confirmDelete {
		b.WriteString("\n" + errorStyle.Render("Delete \""+rec.Name+"\"? y: yes  n: no"))
	}

	return renderPage(m.header(), b.String()+m.footer(), "d: download  c: copy link  x: delete  esc: back")
}
