// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/models"
)

// ─────────────────────────────────────────────
// NewAppInfoService
// ─────────────────────────────────────────────

func TestNewAppInfoService_Success(t *testing.T) {
	svc, err := NewAppInfoService(models.AppBuildInfo{Version: "1.0.0"}, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, svc)
}

func TestNewAppInfoService_EmptyVersion_ReturnsError(t *testing.T) {
	svc, err := NewAppInfoService(models.AppBuildInfo{Date: "2026-01-01"}, logger.Nop())

	assert.Nil(t, svc)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrVersionIsNotSpecified))
}

// ─────────────────────────────────────────────
// GetAppInfo
// ─────────────────────────────────────────────

func TestAppInfoService_GetAppInfo(t *testing.T) {
	info := models.AppBuildInfo{Version: "2.5.1", Date: "2026-02-03", Commit: "abc123"}

	svc, err := NewAppInfoService(info, logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, info, svc.GetAppInfo(context.Background()))
}
