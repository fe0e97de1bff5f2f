package handler

import (
	"context"
	"errors"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	userv1 "giveaway-platform/users-service/api/generated/user/v1"
	"giveaway-platform/users-service/internal/user/domain"
	"giveaway-platform/users-service/internal/user/service"
)

// Server implements UsersService (proto server) for user lifecycle.
// Proto: user/user.proto → internal/user/handler.
type Server struct {
	userv1.UnimplementedUsersServiceServer
	users *service.Service
}

// NewServer returns a new Users gRPC server. users may be nil; then all RPCs
// return Unimplemented.
func NewServer(users *service.Service) *Server {
	return &Server{users: users}
}

// CreateUser registers a new inactive user and broadcasts the creation event.
func (s *Server) CreateUser(ctx context.Context, req *userv1.CreateUserRequest) (*userv1.CreateUserResponse, error) {
	if s.users == nil {
		return nil, status.Error(codes.Unimplemented, "method CreateUser not implemented")
	}
	if err := validateCreateUserInput(req); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	u, err := s.users.Create(ctx, service.CreateInput{
		Email:       req.GetEmail(),
		Password:    req.GetPassword(),
		FullName:    req.GetFullName(),
		PhoneNumber: req.GetPhoneNumber(),
		Role:        req.GetRole(),
		AvatarURL:   req.GetAvatarUrl(),
	})
	if err != nil {
		return nil, userError(err)
	}
	return &userv1.CreateUserResponse{User: domainUserToProto(u)}, nil
}

// UpdateUser modifies profile fields of an existing user and broadcasts the
// update event.
func (s *Server) UpdateUser(ctx context.Context, req *userv1.UpdateUserRequest) (*userv1.UpdateUserResponse, error) {
	if s.users == nil {
		return nil, status.Error(codes.Unimplemented, "method UpdateUser not implemented")
	}
	if err := validateUpdateUserInput(req); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	u, err := s.users.Update(ctx, service.UpdateInput{
		GUID:        req.GetGuid(),
		Email:       req.GetEmail(),
		FullName:    req.GetFullName(),
		PhoneNumber: req.GetPhoneNumber(),
		AvatarURL:   req.GetAvatarUrl(),
	})
	if err != nil {
		return nil, userError(err)
	}
	return &userv1.UpdateUserResponse{User: domainUserToProto(u)}, nil
}

// ListUser returns a filtered page of users along with the total user count.
func (s *Server) ListUser(ctx context.Context, req *userv1.ListUserRequest) (*userv1.ListUserResponse, error) {
	if s.users == nil {
		return nil, status.Error(codes.Unimplemented, "method ListUser not implemented")
	}
	users, count, err := s.users.List(ctx, service.ListInput{
		Filter:  req.GetFilter(),
		OrderBy: req.GetOrderBy(),
		Desc:    req.GetDescending(),
		Page:    req.GetPage(),
		Limit:   req.GetLimit(),
	})
	if err != nil {
		return nil, userError(err)
	}
	results := make([]*userv1.User, 0, len(users))
	for _, u := range users {
		results = append(results, domainUserToProto(u))
	}
	return &userv1.ListUserResponse{Results: results, Count: count}, nil
}

// DetailUser returns a single user by guid.
func (s *Server) DetailUser(ctx context.Context, req *userv1.DetailUserRequest) (*userv1.DetailUserResponse, error) {
	if s.users == nil {
		return nil, status.Error(codes.Unimplemented, "method DetailUser not implemented")
	}
	guid := strings.TrimSpace(req.GetGuid())
	if guid == "" {
		return nil, status.Error(codes.InvalidArgument, "guid required")
	}
	u, err := s.users.Detail(ctx, guid)
	if err != nil {
		return nil, userError(err)
	}
	return &userv1.DetailUserResponse{User: domainUserToProto(u)}, nil
}

// DeleteUser removes a user and broadcasts the deletion event with the final
// snapshot of the record.
func (s *Server) DeleteUser(ctx context.Context, req *userv1.DeleteUserRequest) (*userv1.DeleteUserResponse, error) {
	if s.users == nil {
		return nil, status.Error(codes.Unimplemented, "method DeleteUser not implemented")
	}
	guid := strings.TrimSpace(req.GetGuid())
	if guid == "" {
		return nil, status.Error(codes.InvalidArgument, "guid required")
	}
	u, err := s.users.Delete(ctx, guid)
	if err != nil {
		return nil, userError(err)
	}
	return &userv1.DeleteUserResponse{User: domainUserToProto(u)}, nil
}

// userError maps user service sentinels to gRPC status codes.
func userError(err error) error {
	switch {
	case errors.Is(err, service.ErrEmailTaken), errors.Is(err, service.ErrPhoneTaken):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, service.ErrUserNotFound), errors.Is(err, service.ErrUsersNotFound):
		return status.Error(codes.NotFound, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

func validateCreateUserInput(req *userv1.CreateUserRequest) error {
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

func validateUpdateUserInput(req *userv1.UpdateUserRequest) error {
	if strings.TrimSpace(req.GetGuid()) == "" {
		return errors.New("guid is required")
	}
	if strings.TrimSpace(req.GetEmail()) == "" {
		return errors.New("email is required")
	}
	if strings.TrimSpace(req.GetPhoneNumber()) == "" {
		return errors.New("phone_number is required")
	}
	return nil
}

func domainUserToProto(u *domain.User) *userv1.User {
	if u == nil {
		return nil
	}
	return &userv1.User{
		Guid:          u.GUID,
		Email:         u.Email,
		FullName:      u.FullName,
		PhoneNumber:   u.PhoneNumber,
		Role:          u.Role,
		AvatarUrl:     u.AvatarURL,
		IsActive:      u.IsActive,
		IsDeleted:     u.IsDeleted,
		BidsAvailable: u.BidsAvailable,
		CreatedAt:     timestamppb.New(u.CreatedAt),
		UpdatedAt:     timestamppb.New(u.UpdatedAt),
	}
}
