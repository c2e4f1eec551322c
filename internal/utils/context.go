// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, JWT token generation and validation,
// and other common operations.
package utils

import (
	"context"

	"github.com/MKhiriev/go-gate-keeper/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// UserCtxKey is the key used to store the authenticated (or looked-up) user
// record in the context. Used together with GetUserFromContext for type-safe
// retrieval of the user from context.Context.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.UserCtxKey, user)
var UserCtxKey = contextKey("user")

// PayloadCtxKey is the key under which the body-schema middleware stores the
// parsed, validated request payload so downstream handlers do not re-decode
// the body.
var PayloadCtxKey = contextKey("payload")

// GetUserFromContext retrieves the user record from the context.
//
// Returns the user and an ok flag:
//   - ok == true  — a user was attached by an upstream guard
//   - ok == false — value is missing or has an unexpected type
//
// Example usage:
//
//	user, ok := utils.GetUserFromContext(ctx)
//	if !ok {
//	    // handle missing user in context
//	}
func GetUserFromContext(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(UserCtxKey).(models.User)
	return user, ok
}

// GetPayloadFromContext retrieves the parsed request payload attached by the
// body-schema middleware. Callers type-assert the result to their concrete
// payload type.
func GetPayloadFromContext(ctx context.Context) (any, bool) {
	payload := ctx.Value(PayloadCtxKey)
	return payload, payload != nil
}
