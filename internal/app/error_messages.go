// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// habit tracker handlers and middleware.
//
// All Msg* constants are human-readable message strings written into the
// "detail" field of HTTP error bodies. Keeping them in one place keeps the
// wording of the API consistent.
package app

const (
	// MsgNotFound is returned for a missing record or a record of another
	// owner.
	MsgNotFound = "Not found."

	// MsgInvalidPage is returned for a malformed or out-of-range page number.
	MsgInvalidPage = "Invalid page."

	// MsgJSONParseError is returned when the request body is not valid JSON
	// or does not match the expected shape.
	MsgJSONParseError = "JSON parse error."

	// MsgEmptyBody is returned when a write request carries no body.
	MsgEmptyBody = "Request body is empty."

	// MsgNotAuthenticated is returned when the Authorization header is
	// missing or not a bearer token.
	MsgNotAuthenticated = "Authentication credentials were not provided."

	// MsgInvalidCredentials is returned by login for an unknown email, a
	// wrong password or an inactive account.
	MsgInvalidCredentials = "No active account found with the given credentials"

	// MsgTokenIsExpiredOrInvalid is returned when a bearer or refresh token
	// cannot be verified.
	MsgTokenIsExpiredOrInvalid = "Token is invalid or expired"

	// MsgConstraintViolation is returned when the database rejects a record
	// the validators let through.
	MsgConstraintViolation = "Record violates a data constraint."

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgMethodNotAllowed is a format string filled with the request method.
	MsgMethodNotAllowed = "Method \"%s\" not allowed."

	// MsgUserRegistered is a format string filled with the registered email.
	MsgUserRegistered = "Регистрация пользователя %s прошла успешно."
)
