// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	add       key.Binding
	rename    key.Binding
	toggle    key.Binding
	delete    key.Binding
	clear     key.Binding
	copy      key.Binding
	resync    key.Binding
	reload    key.Binding
	info      key.Binding
	help      key.Binding
	quit      key.Binding
	forceQuit key.Binding
	submit    key.Binding
	back      key.Binding
	yes       key.Binding
	no        key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	add:       key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
	rename:    key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "rename")),
	toggle:    key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "done/undone")),
	delete:    key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
	clear:     key.NewBinding(key.WithKeys("C"), key.WithHelp("C", "delete all")),
	copy:      key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy title")),
	resync:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "resync")),
	reload:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
	info:      key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "about")),
	help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
	quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	forceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	submit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
	back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	yes:       key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "yes")),
	no:        key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "no")),
}

// listHelp is the help.KeyMap of the list screen.
type listHelp struct{}

func (listHelp) ShortHelp() []key.Binding {
	return []key.Binding{keys.add, keys.toggle, keys.rename, keys.delete, keys.help, keys.quit}
}

func (listHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{keys.up, keys.down, keys.add, keys.rename},
		{keys.toggle, keys.delete, keys.clear, keys.copy},
		{keys.resync, keys.reload, keys.info, keys.quit},
	}
}

// inputHelp is the help.KeyMap of the add and rename prompts.
type inputHelp struct{}

func (inputHelp) ShortHelp() []key.Binding {
	return []key.Binding{keys.submit, keys.back}
}

func (inputHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{inputHelp{}.ShortHelp()}
}
