// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-todo-keeper/models"
)

const titleWidth = 48

func (m model) View() string {
	if m.quitting {
		return ""
	}

	switch m.mode {
	case modeInfo:
		return appStyle.Render(renderBuildInfoWindow(m.info))
	case modeConfirmDelete:
		title := ""
		if m.target != nil {
			title = m.target.Title
		}
		return appStyle.Render(confirmModel{message: fmt.Sprintf("Delete %q?", fitText(title, titleWidth))}.View())
	case modeConfirmClear:
		return appStyle.Render(confirmModel{message: fmt.Sprintf("Delete all %d todos?", len(m.items))}.View())
	}

	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString("Loading todos...\n")
	case len(m.items) == 0:
		b.WriteString("No todos yet. Press a to add one.\n")
	default:
		for i, item := range m.items {
			_, stale := m.outOfSync[i]
			b.WriteString(renderTodoRow(i, item, i == m.cursor, stale))
			b.WriteString("\n")
		}
	}

	if m.editing() {
		label := "New todo: "
		if m.mode == modeRename {
			label = "Rename: "
		}
		b.WriteString("\n")
		b.WriteString(label)
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}

	hotKeys := m.help.View(listHelp{})
	if m.editing() {
		hotKeys = m.help.View(inputHelp{})
	}

	return appStyle.Render(renderPage(titleStyle.Render(m.header()), strings.TrimRight(b.String(), "\n"), hotKeys))
}

func (m model) header() string {
	done := 0
	for _, item := range m.items {
		if item.Completed {
			done++
		}
	}

	header := fmt.Sprintf("TODOS %d/%d done", done, len(m.items))
	if n := len(m.outOfSync); n > 0 {
		header += fmt.Sprintf(" │ %d not saved", n)
	}
	return header
}

func renderTodoRow(i int, item *models.Todo, selected, stale bool) string {
	cursor := " "
	if selected {
		cursor = ">"
	}
	check := "[ ]"
	if item.Completed {
		check = "[x]"
	}

	title := fitText(item.Title, titleWidth)
	switch {
	case item.Completed:
		title = doneStyle.Render(title)
	case selected:
		title = selectedStyle.Render(title)
	}

	row := fmt.Sprintf("%s %3d %s %s", cursor, i+1, check, title)
	if stale {
		row += " " + staleStyle.Render("(not saved)")
	}
	return row
}
