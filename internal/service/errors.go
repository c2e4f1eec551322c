package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrTokenIsExpiredOrInvalid covers every JWT validation failure:
	// bad signature, expiry, wrong issuer, malformed token, missing id claim.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
