package handler

import (
	"context"
	"errors"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	authv1 "giveaway-platform/users-service/api/generated/auth/v1"
	"giveaway-platform/users-service/internal/auth/service"
)

// AuthServer implements AuthService (proto server) for sign-up, sign-in, and
// email-token verification.
// Proto: auth/auth.proto → internal/auth/handler.
type AuthServer struct {
	authv1.UnimplementedAuthServiceServer
	auth *service.AuthService
}

// NewAuthServer returns a new Auth gRPC server. auth may be nil; then all RPCs
// return Unimplemented.
func NewAuthServer(auth *service.AuthService) *AuthServer {
	return &AuthServer{auth: auth}
}

// SignUp creates an inactive account and returns the verification token and
// confirmation link alongside the new guid.
func (s *AuthServer) SignUp(ctx context.Context, req *authv1.SignUpRequest) (*authv1.SignUpResponse, error) {
	if s.auth == nil {
		return nil, status.Error(codes.Unimplemented, "method SignUp not implemented")
	}
	if err := validateSignUpInput(req); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	res, err := s.auth.SignUp(ctx, req.GetEmail(), req.GetPassword(), req.GetFullName(), req.GetPhoneNumber())
	if err != nil {
		return nil, authError(err)
	}
	return &authv1.SignUpResponse{
		Guid:              res.GUID,
		VerificationToken: res.VerificationToken,
		ConfirmationLink:  res.ConfirmationLink,
	}, nil
}

// SignIn verifies credentials and returns the opaque bearer token of the new session.
func (s *AuthServer) SignIn(ctx context.Context, req *authv1.SignInRequest) (*authv1.SignInResponse, error) {
	if s.auth == nil {
		return nil, status.Error(codes.Unimplemented, "method SignIn not implemented")
	}
	if err := validateSignInInput(req); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	res, err := s.auth.SignIn(ctx, req.GetEmail(), req.GetPassword())
	if err != nil {
		return nil, authError(err)
	}
	return &authv1.SignInResponse{
		Email:        res.Email,
		AccessToken:  res.AccessToken,
		RefreshToken: res.RefreshToken,
	}, nil
}

// VerifyEmailToken consumes the one-time confirmation token and activates the account.
func (s *AuthServer) VerifyEmailToken(ctx context.Context, req *authv1.VerifyEmailTokenRequest) (*authv1.VerifyEmailTokenResponse, error) {
	if s.auth == nil {
		return nil, status.Error(codes.Unimplemented, "method VerifyEmailToken not implemented")
	}
	if err := validateVerifyEmailTokenInput(req); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	if err := s.auth.VerifyEmailToken(ctx, req.GetGuid(), req.GetVerificationToken()); err != nil {
		return nil, authError(err)
	}
	return &authv1.VerifyEmailTokenResponse{}, nil
}

// authError maps auth service sentinels to gRPC status codes.
func authError(err error) error {
	switch {
	case errors.Is(err, service.ErrEmailAlreadyRegistered):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, service.ErrUserNotFound), errors.Is(err, service.ErrTokenNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		return status.Error(codes.Unauthenticated, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

func validateSignUpInput(req *authv1.SignUpRequest) error {
	if strings.TrimSpace(req.GetEmail()) == "" {
		return errors.New("email is required")
	}
	if req.GetPassword() == "" {
		return errors.New("password is required")
	}
	if strings.TrimSpace(req.GetPhoneNumber()) == "" {
		return errors.New("phone_number is required")
	}
	return nil
}

func validateSignInInput(req *authv1.SignInRequest) error {
	if strings.TrimSpace(req.GetEmail()) == "" {
		return errors.New("email is required")
	}
	if req.GetPassword() == "" {
		return errors.New("password is required")
	}
	return nil
}

func validateVerifyEmailTokenInput(req *authv1.VerifyEmailTokenRequest) error {
	if strings.TrimSpace(req.GetGuid()) == "" {
		return errors.New("guid is required")
	}
	if strings.TrimSpace(req.GetVerificationToken()) == "" {
		return errors.New("verification_token is required")
	}
	return nil
}
