// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrNilValue     = errors.New("nil value for validation")
	ErrEmptyTitle   = errors.New("title is required")
	ErrTitleTooLong = errors.New("title is too long")
	ErrTitleNotUTF8 = errors.New("title is not valid utf-8")
	ErrInvalidID    = errors.New("invalid todo id")
)
