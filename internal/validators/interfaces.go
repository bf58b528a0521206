// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks todos and todo requests before they reach a
// store. A [Validator] can be scoped to named fields.
package validators

import "context"

// Validator validates an input value. When field names are given only those
// fields are checked.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
