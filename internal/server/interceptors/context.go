package interceptors

import "context"

type contextKey struct{ name string }

var (
	userGUIDKey = contextKey{"user_guid"}
	roleKey     = contextKey{"role"}
)

// WithIdentity returns a context with user_guid and role set. Handlers can
// read these via GetUserGUID and GetRole.
func WithIdentity(ctx context.Context, userGUID, role string) context.Context {
	ctx = context.WithValue(ctx, userGUIDKey, userGUID)
	ctx = context.WithValue(ctx, roleKey, role)
	return ctx
}

// GetUserGUID returns the user_guid from context and true if set; otherwise "", false.
func GetUserGUID(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(userGUIDKey).(string)
	return v, ok
}

// GetRole returns the role from context and true if set; otherwise "", false.
func GetRole(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(roleKey).(string)
	return v, ok
}
