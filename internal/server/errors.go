// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// errHTTPServerNotConfigured means the catalog router or listen address is missing.
	errHTTPServerNotConfigured = errors.New("catalog http server is not configured")
	errHTTPServerNotStarted    = errors.New("catalog http server was not created")
)
