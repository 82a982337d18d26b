// Package utils provides small helpers shared by the HTTP layer and the
// Open Food Facts client: the authenticated user in context, JSON response
// writing, the outbound HTTP client, JWT parsing and id generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys, so keys from other
// packages can never collide with ours.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

const userIDCtxKey = contextKey("userID")

// ContextWithUserID returns a copy of ctx carrying the authenticated user id.
func ContextWithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDCtxKey, userID)
}

// GetUserIDFromContext returns the user id stored by [ContextWithUserID].
// ok is false when the value is missing or empty.
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDCtxKey).(string)
	return userID, ok && userID != ""
}
