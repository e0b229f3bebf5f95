package repository

import "context"

type contextKey string

const userTokenKey contextKey = "user_token"

// WithUserToken returns a context carrying the caller's store JWT. Writes
// made with it run under the user's row-level security policies instead of
// the service role.
func WithUserToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, userTokenKey, token)
}

// userTokenFromContext returns the caller's token, or empty when the call
// is not user-scoped (background jobs, service-role reads).
func userTokenFromContext(ctx context.Context) string {
	if token, ok := ctx.Value(userTokenKey).(string); ok {
		return token
	}
	return ""
}
