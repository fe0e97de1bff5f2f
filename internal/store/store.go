// Package store bundles the per-table repositories behind one manager so
// services can run multi-repository mutations inside a single transaction.
package store

import (
	"context"
	"database/sql"

	"giveaway-platform/users-service/internal/db"
	tokenrepo "giveaway-platform/users-service/internal/token/repository"
	userrepo "giveaway-platform/users-service/internal/user/repository"
)

// Manager hands out repositories bound to a handle and runs transactions.
// Services pass the handle received from WithTx to scope repositories to
// that transaction; DB() returns the non-transactional handle.
type Manager interface {
	DB() db.DBTX
	Users(h db.DBTX) userrepo.Repository
	Tokens(h db.DBTX) tokenrepo.Repository
	WithTx(ctx context.Context, fn func(ctx context.Context, h db.DBTX) error) error
}

// Postgres implements Manager over a *sql.DB.
type Postgres struct {
	db *sql.DB
}

// NewPostgres returns a Manager backed by the given database.
func NewPostgres(database *sql.DB) *Postgres {
	return &Postgres{db: database}
}

func (p *Postgres) DB() db.DBTX {
	return p.db
}

func (p *Postgres) Users(h db.DBTX) userrepo.Repository {
	if h == nil {
		h = p.db
	}
	return userrepo.New(h)
}

func (p *Postgres) Tokens(h db.DBTX) tokenrepo.Repository {
	if h == nil {
		h = p.db
	}
	return tokenrepo.New(h)
}

func (p *Postgres) WithTx(ctx context.Context, fn func(ctx context.Context, h db.DBTX) error) error {
	return db.WithTx(ctx, p.db, fn)
}
