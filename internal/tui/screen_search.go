// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/macro-marketplace/models"
)

func (m model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.search.Blur()
		m.screen = screenList
		return m, nil
	case key.Matches(msg, keys.enter):
		m.search.Blur()
		m.screen = screenList
		m.query = parseSearch(m.search.Value())
		m.source = sourceSearch
		return m.loadPage(1)
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func (m model) viewSearch() string {
	body := "Search: [" + m.search.View() + "]\n\n" +
		"Filters: category:<" + categoryNames() + ">  author:<name>"
	return renderPage(m.header(), body+m.footer(), "enter: search  esc: cancel")
}

// parseSearch splits input into free text and the category:/author: filters.
// Unknown categories are passed on and rejected by the catalog service.
func parseSearch(input string) models.SearchQuery {
	var (
		q    models.SearchQuery
		text []string
	)
	for _, field := range strings.Fields(input) {
		name, value, ok := strings.Cut(field, ":")
		switch {
		case ok && (strings.EqualFold(name, "category") || strings.EqualFold(name, "cat")):
			q.Category = models.Category(value)
		case ok && strings.EqualFold(name, "author"):
			q.Author = value
		default:
			text = append(text, field)
		}
	}
	q.Query = strings.Join(text, " ")
	return q
}

func categoryNames() string {
	names := make([]string, 0, len(models.Categories))
	for _, c := range models.Categories {
		names = append(names, string(c))
	}
	return strings.Join(names, "|")
}
