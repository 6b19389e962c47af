// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, HTTP client initialization, JWT token generation
// and validation, and identifier generation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-library-catalog/models"
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

// IdentityCtxKey is the key under which the authorization guard stores the
// decoded token of an authenticated caller.
var IdentityCtxKey = contextKey("identity")

// WithIdentity returns a copy of ctx carrying the decoded token.
func WithIdentity(ctx context.Context, token models.Token) context.Context {
	return context.WithValue(ctx, IdentityCtxKey, token)
}

// GetIdentityFromContext retrieves the decoded token stored by WithIdentity.
//
// Returns ok == false when no identity is attached to ctx.
func GetIdentityFromContext(ctx context.Context) (models.Token, bool) {
	token, ok := ctx.Value(IdentityCtxKey).(models.Token)
	return token, ok
}

// GetUserIDFromContext retrieves the identifier of the authenticated caller.
//
// Example usage:
//
//	userID, ok := utils.GetUserIDFromContext(ctx)
//	if !ok {
//	    // handle missing user in context
//	}
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	token, ok := GetIdentityFromContext(ctx)
	if !ok {
		return 0, false
	}

	return token.UserID, true
}
