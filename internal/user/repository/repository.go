package repository

import (
	"context"
	"time"

	"giveaway-platform/users-service/internal/user/domain"
)

// ListParams carries the predicate/sort/paginate options for List.
// Filter keys and OrderBy are API field names (e.g. "phoneNumber"); unknown
// names are ignored by the Postgres implementation.
type ListParams struct {
	Filter  map[string]string
	OrderBy string
	Desc    bool
	Page    int32
	Limit   int32
}

// Repository defines persistence for users.
type Repository interface {
	// GetByGUID returns the user for guid, or nil if not found.
	GetByGUID(ctx context.Context, guid string) (*domain.User, error)
	// GetByEmail returns the user with the given email in any activation state, or nil if not found.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	// GetActiveByEmail returns the active, non-deleted user with the given email, or nil if not found.
	GetActiveByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindByEmailOrPhone returns a user matching email or phone, excluding
	// excludeGUID when non-empty, or nil if none matches.
	FindByEmailOrPhone(ctx context.Context, email, phone, excludeGUID string) (*domain.User, error)
	// Create persists the user. The user must have GUID set; it is not assigned by this method.
	Create(ctx context.Context, u *domain.User) error
	// Update persists email, phone number, full name, and avatar for the user with u.GUID.
	Update(ctx context.Context, u *domain.User) error
	// Delete removes the user row. Returns the number of rows deleted.
	Delete(ctx context.Context, guid string) (int64, error)
	// Activate sets is_active for the user with the given guid.
	Activate(ctx context.Context, guid string) error
	// List returns a page of users matching p.
	List(ctx context.Context, p ListParams) ([]*domain.User, error)
	// CountAll returns the total number of user rows regardless of filters.
	CountAll(ctx context.Context) (int64, error)

	// ListByFavoriteCategory returns users whose favorite-category set contains categoryGUID.
	ListByFavoriteCategory(ctx context.Context, categoryGUID string) ([]*domain.User, error)
	// UpdateFavoriteCategory rewrites the nested category reference across all owning users.
	UpdateFavoriteCategory(ctx context.Context, cat domain.FavoriteCategory) error
	// RemoveFavoriteCategory deletes the nested category reference from all owning users.
	RemoveFavoriteCategory(ctx context.Context, categoryGUID string) error
	// TouchUpdatedAt bumps updated_at for the given users. Returns the number of rows updated.
	TouchUpdatedAt(ctx context.Context, guids []string, at time.Time) (int64, error)
}
