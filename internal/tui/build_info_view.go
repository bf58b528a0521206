// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-todo-keeper/models"
)

// buildInfo is shown on the about screen. Server is empty in local mode or
// when the server did not answer.
type buildInfo struct {
	Client models.AppBuildInfo
	Server *models.AppBuildInfo
	Mode   string
}

func renderBuildInfoWindow(info buildInfo) string {
	var b strings.Builder

	b.WriteString("Application: go-todo-keeper\n")
	b.WriteString("Store: ")
	b.WriteString(valueOrNA(info.Mode))
	b.WriteString("\n\n")
	writeBuildInfo(&b, "Client", info.Client)

	if info.Server != nil {
		b.WriteString("\n")
		writeBuildInfo(&b, "Server", *info.Server)
	}

	return renderPage("ABOUT", strings.TrimRight(b.String(), "\n"), "esc: back")
}

func writeBuildInfo(b *strings.Builder, title string, info models.AppBuildInfo) {
	b.WriteString(title)
	b.WriteString(" version: ")
	b.WriteString(valueOrNA(info.Version))
	b.WriteString("\n")
	b.WriteString(title)
	b.WriteString(" date: ")
	b.WriteString(valueOrNA(info.Date))
	b.WriteString("\n")
	b.WriteString(title)
	b.WriteString(" commit: ")
	b.WriteString(valueOrNA(info.Commit))
	b.WriteString("\n")
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
