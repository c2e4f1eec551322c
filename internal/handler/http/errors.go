// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Client-visible failure messages. Their exact wording is part of the public
// API contract: the web frontend matches on these strings.
const (
	msgNoTokenProvided = "No token provided"
	msgInvalidToken    = "Invalid token"
	msgUserNotFound    = "User not found"
	msgUserNotVerified = "User is not verified"

	msgTooManyRequests = "Too many requests from this user, please try again after 2 minutes."
)

// Sentinel errors used by the authentication middleware when extracting a
// token from the request. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned when the request carries
	// neither a token cookie nor an "Authorization" header.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but cannot be split into at least two space-separated
	// parts (i.e. the token value is missing entirely).
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the "Authorization" header contains the
	// expected scheme prefix but the token value itself is an empty string.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)

// errNoUserInContext signals a broken guard chain: a stage that requires an
// authenticated or looked-up user ran without one attached to the request
// context. Surfaces as HTTP 500 because it is a wiring bug, not client error.
var errNoUserInContext = errors.New("no user attached to request context")
