package auth

import (
	"context"
)

type ctxKey string

const userKey ctxKey = "userClaims"

func WithClaims(ctx context.Context, c *Claims) context.Context {
	return context.WithValue(ctx, userKey, c)
}

// FromContext returns the claims stored by the auth middleware, or nil
// when the request was not authenticated.
func FromContext(ctx context.Context) *Claims {
	if v, ok := ctx.Value(userKey).(*Claims); ok {
		return v
	}
	return nil
}
