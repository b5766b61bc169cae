// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/macro-marketplace/internal/service"
)

const (
	uploadPackage = iota
	uploadPreview
	uploadName
	uploadDescription
	uploadCategory
)

type uploadForm struct {
	inputs []textinput.Model
	focus  int
	state  service.DraftState
}

func newUploadForm() uploadForm {
	newInput := func(placeholder string, limit int) textinput.Model {
		in := textinput.New()
		in.Placeholder = placeholder
		in.CharLimit = limit
		in.Width = 48
		return in
	}
	return uploadForm{inputs: []textinput.Model{
		newInput("path to .zip package", 1024),
		newInput("path to image or video (optional)", 1024),
		newInput("name", 128),
		newInput("description", 1024),
		newInput(categoryNames(), 32),
	}}
}

func (f *uploadForm) focusCurrent() tea.Cmd {
	return focusInput(f.inputs, f.focus)
}

// fill shows the draft fields after a package or preview was attached.
func (f *uploadForm) fill(state service.DraftState) {
	f.state = state
	f.inputs[uploadName].SetValue(state.Name)
	f.inputs[uploadDescription].SetValue(state.Description)
	f.inputs[uploadCategory].SetValue(string(state.Category))
}

// pushFields copies the typed text fields into the draft.
func (m model) pushFields() {
	m.draft.SetName(m.upload.inputs[uploadName].Value())
	m.draft.SetDescription(m.upload.inputs[uploadDescription].Value())
	m.draft.SetCategory(m.upload.inputs[uploadCategory].Value())
}

func (m model) updateUpload(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.draft.Reset()
		m.upload = newUploadForm()
		m.screen = screenList
		return m, nil
	case key.Matches(msg, keys.tab):
		m.upload.focus = (m.upload.focus + 1) % len(m.upload.inputs)
		return m, m.upload.focusCurrent()
	case key.Matches(msg, keys.backtab):
		m.upload.focus = (m.upload.focus + len(m.upload.inputs) - 1) % len(m.upload.inputs)
		return m, m.upload.focusCurrent()
	case key.Matches(msg, keys.submit):
		if m.busy {
			return m, nil
		}
		m.pushFields()
		m.busy = true
		return m, m.cmdSubmit()
	case key.Matches(msg, keys.enter):
		switch m.upload.focus {
		case uploadPackage:
			m.pushFields()
			m.busy = true
			return m, m.cmdSelectPackage(m.upload.inputs[uploadPackage].Value())
		case uploadPreview:
			m.pushFields()
			m.busy = true
			return m, m.cmdSelectPreview(m.upload.inputs[uploadPreview].Value())
		}
		m.upload.focus = (m.upload.focus + 1) % len(m.upload.inputs)
		return m, m.upload.focusCurrent()
	}

	var cmd tea.Cmd
	m.upload.inputs[m.upload.focus], cmd = m.upload.inputs[m.upload.focus].Update(msg)
	return m, cmd
}

func (m model) viewUpload() string {
	st := m.upload.state
	in := m.upload.inputs

	var b strings.Builder
	b.WriteString("Package:     [" + in[uploadPackage].View() + "]\n")
	if st.PackageName != "" {
		b.WriteString(fmt.Sprintf("             %s, %s\n", st.PackageName, formatSize(st.PackageSize)))
	}
	b.WriteString("Preview:     [" + in[uploadPreview].View() + "]\n")
	if st.Preview != nil {
		kind := "image"
		if st.Preview.IsVideo {
			kind = "video"
		}
		b.WriteString("             " + kind + " at " + st.Preview.URL + "\n")
	}
	b.WriteString("Name:        [" + in[uploadName].View() + "]\n")
	b.WriteString("Description: [" + in[uploadDescription].View() + "]\n")
	b.WriteString("Category:    [" + in[uploadCategory].View() + "]\n")

	return renderPage(m.header(), b.String()+m.footer(), "enter: attach file  tab: next field  ctrl+s: upload  esc: cancel")
}

func formatSize(n int) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(n) / (1 << 20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(n) / (1 << 10))
	}
	return fmt.Sprintf("%d B", n)
}

