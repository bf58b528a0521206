// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

var ErrUnknownAdapterMode = errors.New("unknown adapter mode")
