// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the admin guard when parsing the "Authorization"
// HTTP header. Every one of them is answered with 403 and
// [app.MsgTokenRequired].
var (
	// ErrEmptyAuthorizationHeader is returned when the incoming request does
	// not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but has no second space-separated part.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the second part of the header is an
	// empty string.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")

	// ErrInvalidPathID is returned when a numeric path parameter cannot be
	// parsed.
	ErrInvalidPathID = errors.New("invalid id in path")
)
