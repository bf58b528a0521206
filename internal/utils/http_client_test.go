// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient()
	client2 := NewHTTPClient()

	require.NotNil(t, client1.Client)
	assert.NotSame(t, client1.Client, client2.Client)
}

func newCountingServer(t *testing.T, status int) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(status)
	}))
	t.Cleanup(srv.Close)
	return srv, &calls
}

func TestNewHTTPClient_RetriesIdempotentOn503(t *testing.T) {
	srv, calls := newCountingServer(t, http.StatusServiceUnavailable)
	client := NewHTTPClient()
	client.SetRetryWaitTime(time.Millisecond).SetRetryMaxWaitTime(time.Millisecond)

	resp, err := client.R().Put(srv.URL)

	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode())
	assert.Equal(t, int32(defaultRetryCount+1), calls.Load())
}

func TestNewHTTPClient_DoesNotRetryPost(t *testing.T) {
	srv, calls := newCountingServer(t, http.StatusServiceUnavailable)
	client := NewHTTPClient()

	_, err := client.R().Post(srv.URL)

	require.NoError(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestNewHTTPClient_DoesNotRetryOtherStatuses(t *testing.T) {
	srv, calls := newCountingServer(t, http.StatusNotFound)
	client := NewHTTPClient()

	_, err := client.R().Delete(srv.URL)

	require.NoError(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestRetryIdempotent(t *testing.T) {
	get := &resty.Request{Method: http.MethodGet}

	assert.False(t, retryIdempotent(nil, nil))
	assert.False(t, retryIdempotent(&resty.Response{Request: get}, context.Canceled))
	assert.True(t, retryIdempotent(&resty.Response{Request: get}, assert.AnError))
}
