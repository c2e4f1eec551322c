package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, missing token sign key).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidRateLimitConfigs indicates invalid rate limiter settings
	// (for example, a non-positive window or limit).
	ErrInvalidRateLimitConfigs = errors.New("invalid rate limit configuration")
)
