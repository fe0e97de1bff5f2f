// Package service implements the user mutation operations and the
// category fan-out triggered by broker events. Every successful mutation
// publishes a full user snapshot for downstream services.
package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"giveaway-platform/users-service/internal/db"
	"giveaway-platform/users-service/internal/events"
	"giveaway-platform/users-service/internal/security"
	"giveaway-platform/users-service/internal/store"
	"giveaway-platform/users-service/internal/user/domain"
	userrepo "giveaway-platform/users-service/internal/user/repository"
)

// Sentinel errors for the user service; handlers map them to gRPC codes.
var (
	ErrEmailTaken   = errors.New("user with provided email already exists")
	ErrPhoneTaken   = errors.New("user with provided phone number already exists")
	ErrUserNotFound = errors.New("user not found")
	// ErrUsersNotFound is the single failure the fan-out reports; it does not
	// distinguish zero matches from a failed bulk write.
	ErrUsersNotFound = errors.New("users not found")
)

// Publisher is the minimal event-publishing surface needed by the service.
type Publisher interface {
	PublishUserEvent(ctx context.Context, topic string, event *events.UserEvent) error
}

// CreateInput carries the fields for Create.
type CreateInput struct {
	FullName    string
	Password    string
	PhoneNumber string
	Email       string
	Role        string
	AvatarURL   string
}

// UpdateInput carries the fields for Update.
type UpdateInput struct {
	GUID        string
	FullName    string
	PhoneNumber string
	Email       string
	AvatarURL   string
}

// ListInput carries the predicate/sort/paginate options for List.
type ListInput struct {
	Filter  map[string]string
	OrderBy string
	Desc    bool
	Page    int32
	Limit   int32
}

// Service implements user CRUD with uniqueness enforcement and event emission.
type Service struct {
	store     store.Manager
	hasher    *security.Hasher
	publisher Publisher
}

// NewService returns a Service with the given dependencies.
// publisher may be nil; then no events are emitted.
func NewService(st store.Manager, hasher *security.Hasher, publisher Publisher) *Service {
	return &Service{store: st, hasher: hasher, publisher: publisher}
}

// Create persists a new inactive user after checking that neither email nor
// phone number belongs to an existing user. The email collision is reported
// before the phone collision when both match. Emails are stored lowercased so
// sign-in lookups match regardless of the caller's casing.
func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.User, error) {
	in.Email = strings.TrimSpace(strings.ToLower(in.Email))

	existing, err := s.store.Users(nil).FindByEmailOrPhone(ctx, in.Email, in.PhoneNumber, "")
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if existing.Email == in.Email {
			return nil, ErrEmailTaken
		}
		return nil, ErrPhoneTaken
	}

	hashed, err := s.hasher.Hash([]byte(in.Password))
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		GUID:         uuid.New().String(),
		Email:        in.Email,
		PhoneNumber:  in.PhoneNumber,
		FullName:     in.FullName,
		PasswordHash: hashed,
		Role:         in.Role,
		AvatarURL:    in.AvatarURL,
		IsActive:     false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := user.Validate(); err != nil {
		return nil, err
	}
	if err := s.store.Users(nil).Create(ctx, user); err != nil {
		return nil, duplicateToSentinel(err)
	}

	s.publish(ctx, events.TopicUserCreated, user)
	return user, nil
}

// Update persists profile changes after re-checking email/phone uniqueness
// against every other user. Reassigning a user's own unchanged email or phone
// to itself always succeeds. Emails are stored lowercased like in Create.
func (s *Service) Update(ctx context.Context, in UpdateInput) (*domain.User, error) {
	in.Email = strings.TrimSpace(strings.ToLower(in.Email))

	duplicate, err := s.store.Users(nil).FindByEmailOrPhone(ctx, in.Email, in.PhoneNumber, in.GUID)
	if err != nil {
		return nil, err
	}
	if duplicate != nil {
		if duplicate.Email == in.Email {
			return nil, ErrEmailTaken
		}
		if duplicate.PhoneNumber == in.PhoneNumber {
			return nil, ErrPhoneTaken
		}
	}

	user, err := s.store.Users(nil).GetByGUID(ctx, in.GUID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	user.Email = in.Email
	user.PhoneNumber = in.PhoneNumber
	user.FullName = in.FullName
	user.AvatarURL = in.AvatarURL
	user.UpdatedAt = time.Now().UTC()

	if err := s.store.Users(nil).Update(ctx, user); err != nil {
		return nil, duplicateToSentinel(err)
	}

	s.publish(ctx, events.TopicUserUpdated, user)
	return user, nil
}

// List returns a page of users matching the filter. The returned count is the
// TOTAL number of user rows, not the filtered count; callers must not assume
// count matches len(results) while a filter is active.
func (s *Service) List(ctx context.Context, in ListInput) ([]*domain.User, int64, error) {
	repo := s.store.Users(nil)

	count, err := repo.CountAll(ctx)
	if err != nil {
		return nil, 0, err
	}
	users, err := repo.List(ctx, userrepo.ListParams{
		Filter:  in.Filter,
		OrderBy: in.OrderBy,
		Desc:    in.Desc,
		Page:    in.Page,
		Limit:   in.Limit,
	})
	if err != nil {
		return nil, 0, err
	}
	return users, count, nil
}

// Detail returns the user with the given guid.
func (s *Service) Detail(ctx context.Context, guid string) (*domain.User, error) {
	user, err := s.store.Users(nil).GetByGUID(ctx, guid)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// Delete removes the user and emits the pre-deletion snapshot, with the
// is_deleted flag exactly as it was stored before the row went away.
func (s *Service) Delete(ctx context.Context, guid string) (*domain.User, error) {
	user, err := s.store.Users(nil).GetByGUID(ctx, guid)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	n, err := s.store.Users(nil).Delete(ctx, guid)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, ErrUserNotFound
	}

	s.publish(ctx, events.TopicUserDeleted, user)
	return user, nil
}

// UpdateUsersFavoriteCategories rewrites the changed category across every
// user referencing it, bumping each affected user's updated_at, all inside
// one transaction. Returns the affected users and their count.
func (s *Service) UpdateUsersFavoriteCategories(ctx context.Context, cat *events.CategoryEvent) ([]*domain.User, int64, error) {
	return s.fanOut(ctx, cat.GUID, func(ctx context.Context, repo userrepo.Repository) error {
		return repo.UpdateFavoriteCategory(ctx, domain.FavoriteCategory{
			GUID:        cat.GUID,
			Title:       cat.Title,
			Description: cat.Description,
			ParentGUID:  cat.ParentGUID,
		})
	})
}

// DeleteUsersFavoriteCategories removes the deleted category from every user
// referencing it, bumping each affected user's updated_at, all inside one
// transaction. Returns the affected users and their count.
func (s *Service) DeleteUsersFavoriteCategories(ctx context.Context, cat *events.CategoryEvent) ([]*domain.User, int64, error) {
	return s.fanOut(ctx, cat.GUID, func(ctx context.Context, repo userrepo.Repository) error {
		return repo.RemoveFavoriteCategory(ctx, cat.GUID)
	})
}

func (s *Service) fanOut(ctx context.Context, categoryGUID string, mutate func(ctx context.Context, repo userrepo.Repository) error) ([]*domain.User, int64, error) {
	var (
		affected []*domain.User
		count    int64
	)
	err := s.store.WithTx(ctx, func(ctx context.Context, h db.DBTX) error {
		repo := s.store.Users(h)
		users, err := repo.ListByFavoriteCategory(ctx, categoryGUID)
		if err != nil {
			return err
		}
		if err := mutate(ctx, repo); err != nil {
			return err
		}
		guids := make([]string, len(users))
		for i, u := range users {
			guids[i] = u.GUID
		}
		n, err := repo.TouchUpdatedAt(ctx, guids, time.Now().UTC())
		if err != nil {
			return err
		}
		affected = users
		count = n
		return nil
	})
	if err != nil {
		return nil, 0, ErrUsersNotFound
	}
	return affected, count, nil
}

// duplicateToSentinel translates a unique-index violation surfaced by the
// repository into the matching service sentinel. The pre-insert lookup cannot
// catch a concurrent writer, so the constraint is the last line of defence.
func duplicateToSentinel(err error) error {
	switch {
	case errors.Is(err, userrepo.ErrDuplicateEmail):
		return ErrEmailTaken
	case errors.Is(err, userrepo.ErrDuplicatePhone):
		return ErrPhoneTaken
	}
	return err
}

// publish emits a full snapshot; failures are logged and never fail the mutation.
func (s *Service) publish(ctx context.Context, topic string, u *domain.User) {
	if s.publisher == nil {
		return
	}
	ev := &events.UserEvent{
		GUID:          u.GUID,
		Email:         u.Email,
		FullName:      u.FullName,
		PhoneNumber:   u.PhoneNumber,
		Role:          u.Role,
		CreatedAt:     u.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     u.UpdatedAt.Format(time.RFC3339),
		IsActive:      u.IsActive,
		IsDeleted:     u.IsDeleted,
		BidsAvailable: u.BidsAvailable,
		AvatarURL:     u.AvatarURL,
	}
	if err := s.publisher.PublishUserEvent(ctx, topic, ev); err != nil {
		log.Printf("users: publish %s for %s failed: %v", topic, u.GUID, err)
	}
}
