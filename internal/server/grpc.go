package server

import (
	"google.golang.org/grpc"

	authv1 "giveaway-platform/users-service/api/generated/auth/v1"
	userv1 "giveaway-platform/users-service/api/generated/user/v1"

	authhandler "giveaway-platform/users-service/internal/auth/handler"
	authservice "giveaway-platform/users-service/internal/auth/service"
	userhandler "giveaway-platform/users-service/internal/user/handler"
	userservice "giveaway-platform/users-service/internal/user/service"
)

// Deps holds optional service dependencies for gRPC handlers.
type Deps struct {
	// Auth is the auth service for SignUp/SignIn/VerifyEmailToken. If nil, auth RPCs return Unimplemented.
	Auth *authservice.AuthService
	// Users is the user service for the UsersService RPCs. If nil, user RPCs return Unimplemented.
	Users *userservice.Service
}

// PublicMethods returns the set of full method names that do not require a
// Bearer token. Everything under AuthService is public; the UsersService RPCs
// require an authenticated session.
func PublicMethods() map[string]bool {
	return map[string]bool{
		"/auth.v1.AuthService/SignUp":           true,
		"/auth.v1.AuthService/SignIn":           true,
		"/auth.v1.AuthService/VerifyEmailToken": true,
	}
}

// RegisterServices registers all proto gRPC services with the given server.
//
// Proto → handler mapping:
//   - AuthService  → internal/auth/handler
//   - UsersService → internal/user/handler
func RegisterServices(s grpc.ServiceRegistrar, deps Deps) {
	authv1.RegisterAuthServiceServer(s, authhandler.NewAuthServer(deps.Auth))
	userv1.RegisterUsersServiceServer(s, userhandler.NewServer(deps.Users))
}
