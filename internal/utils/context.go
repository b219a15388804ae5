// Package utils provides small helpers shared by the habit tracker packages:
// the authenticated user in a request context, JSON request and response
// bodies, the outbound HTTP client, JWT issuing and parsing, and identifier
// generation.
package utils

import (
	"context"
)

// contextKey keeps the keys of this package apart from string keys set
// elsewhere.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey holds the authenticated user id (int64). The auth middleware
// sets it through WithUserID.
var UserIDCtxKey = contextKey("userID")

// GetUserIDFromContext returns the user id stored by WithUserID. ok is false
// when the value is missing or is not an int64.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}

// WithUserID returns a copy of ctx carrying userID under UserIDCtxKey.
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, UserIDCtxKey, userID)
}
