// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoHTTPAddress is returned by NewHandlers when the server
// configuration carries no HTTP address. It is a fatal misconfiguration.
var errNoHTTPAddress = errors.New("catalog router needs an http address")
