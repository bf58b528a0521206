// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-todo-keeper/internal/service"
	"github.com/MKhiriev/go-todo-keeper/internal/validators"
	"github.com/MKhiriev/go-todo-keeper/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type mode int

const (
	modeList mode = iota
	modeAdd
	modeRename
	modeConfirmDelete
	modeConfirmClear
	modeInfo
)

// copyToClipboard is replaced in tests.
var copyToClipboard = clipboard.WriteAll

type model struct {
	ctx   context.Context
	todos service.ClientTodoService
	info  buildInfo

	items     []*models.Todo
	outOfSync map[int]struct{}
	cursor    int
	// target is the todo being renamed or confirmed for deletion, captured
	// when the action started so a list refresh cannot retarget it.
	target *models.Todo

	mode  mode
	input textinput.Model
	help  help.Model

	loading  bool
	status   string
	errMsg   string
	quitting bool
}

func newModel(ctx context.Context, todos service.ClientTodoService, info buildInfo) model {
	input := textinput.New()
	input.Placeholder = "What needs to be done?"
	input.CharLimit = validators.MaxTitleLength
	input.Width = 50

	return model{
		ctx:       ctx,
		todos:     todos,
		info:      info,
		outOfSync: map[int]struct{}{},
		input:     input,
		help:      help.New(),
		loading:   true,
	}
}

func (m model) Init() tea.Cmd {
	return m.cmdLoad()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = describeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.refresh()
		return m, nil
	case changeMsg:
		m.refresh()
		return m, nil
	case opDoneMsg:
		if msg.err != nil {
			m.status = ""
			m.errMsg = describeError(msg.err)
		} else {
			m.errMsg = ""
			m.status = msg.status
		}
		m.refresh()
		return m, nil
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	if m.editing() {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.forceQuit) {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.mode {
	case modeAdd, modeRename:
		return m.updateInput(msg)
	case modeConfirmDelete, modeConfirmClear:
		return m.updateConfirm(msg)
	case modeInfo:
		if key.Matches(msg, keys.back, keys.info) {
			m.mode = modeList
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, keys.down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case key.Matches(msg, keys.add):
		m.mode = modeAdd
		m.errMsg = ""
		m.input.Reset()
		return m, m.input.Focus()
	case key.Matches(msg, keys.rename):
		item, ok := m.current()
		if !ok {
			m.status = "no todos"
			return m, nil
		}
		m.mode = modeRename
		m.target = item
		m.errMsg = ""
		m.input.SetValue(item.Title)
		m.input.CursorEnd()
		return m, m.input.Focus()
	case key.Matches(msg, keys.toggle):
		item, ok := m.current()
		if !ok {
			return m, nil
		}
		return m, m.cmdToggle(item.ID)
	case key.Matches(msg, keys.delete):
		item, ok := m.current()
		if !ok {
			m.status = "no todos"
			return m, nil
		}
		m.mode = modeConfirmDelete
		m.target = item
	case key.Matches(msg, keys.clear):
		m.mode = modeConfirmClear
	case key.Matches(msg, keys.copy):
		item, ok := m.current()
		if !ok {
			m.status = "nothing to copy"
			return m, nil
		}
		if err := copyToClipboard(item.Title); err != nil {
			m.errMsg = "copy failed: " + err.Error()
			return m, nil
		}
		m.status = "copied"
	case key.Matches(msg, keys.resync):
		if len(m.outOfSync) == 0 {
			m.status = "everything is saved"
			return m, nil
		}
		m.status = "resyncing..."
		return m, m.cmdResync()
	case key.Matches(msg, keys.reload):
		m.loading = true
		m.errMsg = ""
		return m, m.cmdLoad()
	case key.Matches(msg, keys.info):
		m.mode = modeInfo
	case key.Matches(msg, keys.help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

func (m model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.back):
		m.mode = modeList
		m.target = nil
		m.input.Blur()
		return m, nil
	case key.Matches(msg, keys.submit):
		title := strings.TrimSpace(m.input.Value())
		if title == "" {
			m.errMsg = describeError(validators.ErrEmptyTitle)
			return m, nil
		}

		editMode, target := m.mode, m.target
		m.mode = modeList
		m.target = nil
		m.errMsg = ""
		m.input.Blur()
		m.input.Reset()

		if editMode == modeAdd {
			return m, m.cmdAdd(title)
		}
		if target == nil {
			return m, nil
		}
		return m, m.cmdRename(target.ID, title)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		confirmed, target := m.mode, m.target
		m.mode = modeList
		m.target = nil
		if confirmed == modeConfirmDelete {
			if target == nil {
				return m, nil
			}
			return m, m.cmdRemove(target.ID)
		}
		return m, m.cmdClear()
	case key.Matches(msg, keys.no, keys.back):
		m.mode = modeList
		m.target = nil
	}
	return m, nil
}

// refresh re-reads the list from the service and keeps the cursor in range.
func (m *model) refresh() {
	m.items = m.todos.List()

	m.outOfSync = make(map[int]struct{})
	for _, i := range m.todos.OutOfSync() {
		m.outOfSync[i] = struct{}{}
	}

	if m.cursor >= len(m.items) {
		m.cursor = len(m.items) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m model) current() (*models.Todo, bool) {
	if m.cursor < 0 || m.cursor >= len(m.items) {
		return nil, false
	}
	return m.items[m.cursor], true
}

func (m model) editing() bool {
	return m.mode == modeAdd || m.mode == modeRename
}

// ── commands ─────────────────────────────────

func (m model) cmdLoad() tea.Cmd {
	ctx, todos := m.ctx, m.todos
	return func() tea.Msg {
		return loadedMsg{err: todos.Load(ctx)}
	}
}

func (m model) cmdAdd(title string) tea.Cmd {
	ctx, todos := m.ctx, m.todos
	return func() tea.Msg {
		_, err := todos.Add(ctx, title)
		return opDoneMsg{status: "added", err: err}
	}
}

// Row commands address todos by ID. Bubbletea runs every command in its own
// goroutine, so an index taken from the screen may be stale by the time the
// command reaches the list.

func (m model) cmdRename(id, title string) tea.Cmd {
	ctx, todos := m.ctx, m.todos
	return func() tea.Msg {
		return opDoneMsg{status: "renamed", err: todos.Rename(ctx, id, title)}
	}
}

func (m model) cmdToggle(id string) tea.Cmd {
	ctx, todos := m.ctx, m.todos
	return func() tea.Msg {
		return opDoneMsg{status: "updated", err: todos.Toggle(ctx, id)}
	}
}

func (m model) cmdRemove(id string) tea.Cmd {
	ctx, todos := m.ctx, m.todos
	return func() tea.Msg {
		return opDoneMsg{status: "deleted", err: todos.Remove(ctx, id)}
	}
}

func (m model) cmdClear() tea.Cmd {
	ctx, todos := m.ctx, m.todos
	return func() tea.Msg {
		return opDoneMsg{status: "all todos deleted", err: todos.Clear(ctx)}
	}
}

func (m model) cmdResync() tea.Cmd {
	ctx, todos := m.ctx, m.todos
	return func() tea.Msg {
		return opDoneMsg{status: "all changes saved", err: todos.Resync(ctx)}
	}
}
