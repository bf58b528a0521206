// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-todo-keeper/internal/app"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/service"
	"github.com/MKhiriev/go-todo-keeper/internal/store"
	"github.com/MKhiriev/go-todo-keeper/internal/validators"
)

type errorResponse struct {
	status  int
	message string
}

// Order matters: the first matching entry wins, and a classified store error
// also wraps the low-level query errors listed last.
var errorStatusMap = []struct {
	target error
	errorResponse
}{
	{service.ErrInvalidDataProvided, errorResponse{http.StatusBadRequest, app.MsgInvalidDataProvided}},
	{validators.ErrEmptyTitle, errorResponse{http.StatusBadRequest, app.MsgEmptyTitle}},
	{validators.ErrTitleTooLong, errorResponse{http.StatusBadRequest, app.MsgTitleTooLong}},
	{validators.ErrTitleNotUTF8, errorResponse{http.StatusBadRequest, app.MsgTitleNotUTF8}},
	{validators.ErrInvalidID, errorResponse{http.StatusBadRequest, app.MsgInvalidTodoID}},
	{validators.ErrNilValue, errorResponse{http.StatusBadRequest, app.MsgInvalidDataProvided}},

	{store.ErrTodoNotFound, errorResponse{http.StatusNotFound, app.MsgTodoNotFound}},
	{store.ErrTodoAlreadyExists, errorResponse{http.StatusConflict, app.MsgTodoAlreadyExists}},
	{store.ErrStoreUnavailable, errorResponse{http.StatusServiceUnavailable, app.MsgStoreUnavailable}},

	{store.ErrBuildingSQLQuery, errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}},
	{store.ErrExecutingQuery, errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}},
	{store.ErrBeginningTransaction, errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}},
	{store.ErrCommitingTransaction, errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}},
	{store.ErrExecutingStatement, errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}},
	{store.ErrScanningRow, errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}},
	{store.ErrScanningRows, errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}},
}

func responseFromError(err error) errorResponse {
	for _, entry := range errorStatusMap {
		if errors.Is(err, entry.target) {
			return entry.errorResponse
		}
	}
	return errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}
}

func statusFromError(err error) int {
	return responseFromError(err).status
}

// writeError logs err and answers with the mapped status and a plain-text
// message. Internal details never reach the client.
func writeError(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	resp := responseFromError(err)

	log := logger.FromRequest(r)
	event := log.Warn()
	if resp.status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).Str("func", funcName).Int("status", resp.status).Msg(resp.message)

	http.Error(w, resp.message, resp.status)
}
