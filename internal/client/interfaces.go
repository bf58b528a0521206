// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-todo-keeper/models"
)

// Client defines the lifecycle contract of runnable client applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

// UI is the interactive front end run by [App].
type UI interface {
	Run(ctx context.Context) error
	SetServerInfo(info models.AppBuildInfo)
}
