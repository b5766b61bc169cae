// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	nextPage key.Binding
	prevPage key.Binding
	enter    key.Binding
	esc      key.Binding
	tab      key.Binding
	backtab  key.Binding
	quit     key.Binding
	search   key.Binding
	refresh  key.Binding
	random   key.Binding
	mine     key.Binding
	upload   key.Binding
	login    key.Binding
	logout   key.Binding
	version  key.Binding
	download key.Binding
	delete   key.Binding
	copy     key.Binding
	submit   key.Binding
	register key.Binding
	yes      key.Binding
	no       key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up", "k")),
	down:     key.NewBinding(key.WithKeys("down", "j")),
	nextPage: key.NewBinding(key.WithKeys("right", "n")),
	prevPage: key.NewBinding(key.WithKeys("left", "p")),
	enter:    key.NewBinding(key.WithKeys("enter")),
	esc:      key.NewBinding(key.WithKeys("esc")),
	tab:      key.NewBinding(key.WithKeys("tab", "down")),
	backtab:  key.NewBinding(key.WithKeys("shift+tab", "up")),
	quit:     key.NewBinding(key.WithKeys("q")),
	search:   key.NewBinding(key.WithKeys("/")),
	refresh:  key.NewBinding(key.WithKeys("r")),
	random:   key.NewBinding(key.WithKeys("R")),
	mine:     key.NewBinding(key.WithKeys("m")),
	upload:   key.NewBinding(key.WithKeys("u")),
	login:    key.NewBinding(key.WithKeys("L")),
	logout:   key.NewBinding(key.WithKeys("o")),
	version:  key.NewBinding(key.WithKeys("v")),
	download: key.NewBinding(key.WithKeys("d")),
	delete:   key.NewBinding(key.WithKeys("x")),
	copy:     key.NewBinding(key.WithKeys("c")),
	submit:   key.NewBinding(key.WithKeys("ctrl+s")),
	register: key.NewBinding(key.WithKeys("ctrl+r")),
	yes:      key.NewBinding(key.WithKeys("y")),
	no:       key.NewBinding(key.WithKeys("n", "esc")),
}
