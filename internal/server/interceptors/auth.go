package interceptors

import (
	"context"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"giveaway-platform/users-service/internal/session"
)

const bearerPrefix = "bearer "

// SessionLookup resolves an opaque bearer token to the session payload stored
// at sign-in. *session.Cache satisfies it.
type SessionLookup interface {
	LookupAuth(ctx context.Context, token string) (*session.Payload, error)
}

// AuthUnary returns a unary server interceptor that resolves the Bearer token
// from gRPC metadata against the session cache and sets user_guid and role in
// context for protected RPCs. publicMethods is the set of full method names
// that do not require a Bearer token (e.g. AuthService SignUp, SignIn,
// VerifyEmailToken).
func AuthUnary(sessions SessionLookup, publicMethods map[string]bool) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		token := extractBearer(ctx)
		public := publicMethods[info.FullMethod]

		if token == "" {
			if public {
				return handler(ctx, req)
			}
			return nil, status.Error(codes.Unauthenticated, "missing or invalid authorization")
		}

		payload, err := sessions.LookupAuth(ctx, token)
		if err != nil {
			if public {
				return handler(ctx, req)
			}
			return nil, status.Error(codes.Unauthenticated, "missing or invalid authorization")
		}

		ctx = WithIdentity(ctx, payload.UserGUID, payload.Role)
		return handler(ctx, req)
	}
}

// extractBearer returns the Bearer token from ctx metadata, or "" if missing or malformed.
func extractBearer(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	vals := md.Get("authorization")
	if len(vals) == 0 {
		return ""
	}
	v := strings.TrimSpace(vals[0])
	if len(v) < len(bearerPrefix) {
		return ""
	}
	if !strings.EqualFold(v[:len(bearerPrefix)], bearerPrefix) {
		return ""
	}
	return strings.TrimSpace(v[len(bearerPrefix):])
}
