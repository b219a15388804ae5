// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors raised by the transport layer itself. Callers can match
// against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrNoUserID is returned when an authenticated route runs without a
	// user ID in the request context.
	ErrNoUserID = errors.New("no user ID in request context")

	// ErrInvalidID is returned for a path ID that is not a positive integer.
	// Such IDs can never match a record and are reported as not found.
	ErrInvalidID = errors.New("invalid record id")

	// ErrInvalidPage is returned for a malformed or out-of-range page.
	ErrInvalidPage = errors.New("invalid page")

	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON body")
)
