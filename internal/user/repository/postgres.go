package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"giveaway-platform/users-service/internal/db"
	"giveaway-platform/users-service/internal/user/domain"
)

const userColumns = `guid, email, phone_number, full_name, password_hash, role, avatar_url,
	is_active, is_deleted, bids_available, created_at, updated_at`

// filterableColumns maps API field names to SQL columns for List. Names not in
// this map are silently ignored so callers cannot inject arbitrary predicates.
var filterableColumns = map[string]string{
	"guid":        "guid",
	"email":       "email",
	"phoneNumber": "phone_number",
	"fullName":    "full_name",
	"role":        "role",
	"isActive":    "is_active",
	"isDeleted":   "is_deleted",
}

// PostgresRepository persists users with hand-written SQL over a DBTX handle,
// so the same repository runs against *sql.DB or inside a transaction.
type PostgresRepository struct {
	h db.DBTX
}

// New returns a user repository bound to the given handle.
func New(h db.DBTX) *PostgresRepository {
	return &PostgresRepository{h: h}
}

func (r *PostgresRepository) GetByGUID(ctx context.Context, guid string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE guid = $1`
	u, err := scanUser(r.h.QueryRowContext(ctx, query, guid))
	if err != nil || u == nil {
		return u, err
	}
	if u.FavoriteCategories, err = r.favoriteCategories(ctx, guid); err != nil {
		return nil, err
	}
	return u, nil
}

func (r *PostgresRepository) favoriteCategories(ctx context.Context, userGUID string) ([]domain.FavoriteCategory, error) {
	query := `SELECT category_guid, title, description, parent_guid
		FROM user_favorite_categories WHERE user_guid = $1`
	rows, err := r.h.QueryContext(ctx, query, userGUID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var out []domain.FavoriteCategory
	for rows.Next() {
		var c domain.FavoriteCategory
		if err := rows.Scan(&c.GUID, &c.Title, &c.Description, &c.ParentGUID); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return out, nil
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return scanUser(r.h.QueryRowContext(ctx, query, email))
}

func (r *PostgresRepository) GetActiveByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users
		WHERE email = $1 AND is_active AND NOT is_deleted`
	return scanUser(r.h.QueryRowContext(ctx, query, email))
}

func (r *PostgresRepository) FindByEmailOrPhone(ctx context.Context, email, phone, excludeGUID string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users
		WHERE (email = $1 OR phone_number = $2) AND ($3 = '' OR guid::text <> $3)
		LIMIT 1`
	return scanUser(r.h.QueryRowContext(ctx, query, email, phone, excludeGUID))
}

func (r *PostgresRepository) Create(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO users
		(guid, email, phone_number, full_name, password_hash, role, avatar_url,
		 is_active, is_deleted, bids_available, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.h.ExecContext(ctx, query,
		u.GUID, u.Email, u.PhoneNumber, u.FullName, u.PasswordHash, u.Role, u.AvatarURL,
		u.IsActive, u.IsDeleted, u.BidsAvailable, u.CreatedAt, u.UpdatedAt)
	if err != nil {
		if mapped := mapConstraintError(err); mapped != err {
			return mapped
		}
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Update(ctx context.Context, u *domain.User) error {
	query := `UPDATE users
		SET email = $2, phone_number = $3, full_name = $4, avatar_url = $5, updated_at = $6
		WHERE guid = $1`
	_, err := r.h.ExecContext(ctx, query,
		u.GUID, u.Email, u.PhoneNumber, u.FullName, u.AvatarURL, u.UpdatedAt)
	if err != nil {
		if mapped := mapConstraintError(err); mapped != err {
			return mapped
		}
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, guid string) (int64, error) {
	res, err := r.h.ExecContext(ctx, `DELETE FROM users WHERE guid = $1`, guid)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return res.RowsAffected()
}

func (r *PostgresRepository) Activate(ctx context.Context, guid string) error {
	query := `UPDATE users SET is_active = TRUE, updated_at = $2 WHERE guid = $1`
	_, err := r.h.ExecContext(ctx, query, guid, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) List(ctx context.Context, p ListParams) ([]*domain.User, error) {
	var (
		where []string
		args  []any
	)
	for field, value := range p.Filter {
		col, ok := filterableColumns[field]
		if !ok {
			continue
		}
		args = append(args, value)
		where = append(where, fmt.Sprintf("%s::text = $%d", col, len(args)))
	}

	query := `SELECT ` + userColumns + ` FROM users`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}

	orderCol := "created_at"
	if col, ok := filterableColumns[p.OrderBy]; ok {
		orderCol = col
	}
	direction := "ASC"
	if p.Desc {
		direction = "DESC"
	}
	query += fmt.Sprintf(" ORDER BY %s %s", orderCol, direction)

	limit := p.Limit
	if limit <= 0 {
		limit = 20
	}
	args = append(args, limit)
	query += fmt.Sprintf(" LIMIT $%d", len(args))
	args = append(args, pageOffset(p.Page, limit))
	query += fmt.Sprintf(" OFFSET $%d", len(args))

	rows, err := r.h.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()
	return scanUsers(rows)
}

// pageOffset computes the OFFSET for a 1-based page in int64 so an extreme
// page value cannot overflow into a negative offset.
func pageOffset(page, limit int32) int64 {
	if page <= 1 {
		return 0
	}
	return (int64(page) - 1) * int64(limit)
}

func (r *PostgresRepository) CountAll(ctx context.Context) (int64, error) {
	var n int64
	if err := r.h.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

func (r *PostgresRepository) ListByFavoriteCategory(ctx context.Context, categoryGUID string) ([]*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users
		WHERE guid IN (
			SELECT user_guid FROM user_favorite_categories WHERE category_guid = $1
		)`
	rows, err := r.h.QueryContext(ctx, query, categoryGUID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()
	return scanUsers(rows)
}

func (r *PostgresRepository) UpdateFavoriteCategory(ctx context.Context, cat domain.FavoriteCategory) error {
	query := `UPDATE user_favorite_categories
		SET title = $2, description = $3, parent_guid = $4
		WHERE category_guid = $1`
	_, err := r.h.ExecContext(ctx, query, cat.GUID, cat.Title, cat.Description, cat.ParentGUID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) RemoveFavoriteCategory(ctx context.Context, categoryGUID string) error {
	_, err := r.h.ExecContext(ctx,
		`DELETE FROM user_favorite_categories WHERE category_guid = $1`, categoryGUID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) TouchUpdatedAt(ctx context.Context, guids []string, at time.Time) (int64, error) {
	if len(guids) == 0 {
		return 0, nil
	}
	placeholders := make([]string, len(guids))
	args := make([]any, 0, len(guids)+1)
	args = append(args, at)
	for i, g := range guids {
		args = append(args, g)
		placeholders[i] = fmt.Sprintf("$%d", i+2)
	}
	query := fmt.Sprintf(`UPDATE users SET updated_at = $1 WHERE guid IN (%s)`,
		strings.Join(placeholders, ", "))
	res, err := r.h.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return res.RowsAffected()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUserFields(s rowScanner) (*domain.User, error) {
	u := &domain.User{}
	err := s.Scan(&u.GUID, &u.Email, &u.PhoneNumber, &u.FullName, &u.PasswordHash,
		&u.Role, &u.AvatarURL, &u.IsActive, &u.IsDeleted, &u.BidsAvailable,
		&u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return u, nil
}

// scanUser scans a single-row query result. Missing rows map to (nil, nil);
// errors are returned only for database failures.
func scanUser(row *sql.Row) (*domain.User, error) {
	u, err := scanUserFields(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return u, nil
}

func scanUsers(rows *sql.Rows) ([]*domain.User, error) {
	var out []*domain.User
	for rows.Next() {
		u, err := scanUserFields(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return out, nil
}
