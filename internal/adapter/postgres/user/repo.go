// Package user implements the User repository using PostgreSQL.
// Account management lives outside this module; this repo reads the users
// the authentication boundary refers to by name, plus an idempotent insert
// used by the seeder.
package user

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/avolkov-dev/forum-backend/internal/adapter/postgres"
	"github.com/avolkov-dev/forum-backend/internal/domain"
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.getBy(ctx, squirrel.Eq{"id": id}, id)
}

// GetByUsername returns a user by their unique username.
func (r *Repo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.getBy(ctx, squirrel.Eq{"username": username}, username)
}

func (r *Repo) getBy(ctx context.Context, where squirrel.Eq, ref any) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Select("id", "username", "created_at").
		From("users").
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build user query: %w", err)
	}

	var u domain.User
	if err := q.QueryRow(ctx, sql, args...).Scan(&u.ID, &u.Username, &u.CreatedAt); err != nil {
		return nil, postgres.MapError(err, "user", ref)
	}

	return &u, nil
}

// Ensure inserts a user with the given username if absent and returns the
// stored row either way. Used by cmd/seed, never by the topic lifecycle.
func (r *Repo) Ensure(ctx context.Context, username string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	const ensureSQL = `
INSERT INTO users (id, username) VALUES ($1, $2)
ON CONFLICT (username) DO UPDATE SET username = EXCLUDED.username
RETURNING id, username, created_at`

	var u domain.User
	if err := q.QueryRow(ctx, ensureSQL, uuid.New(), username).Scan(&u.ID, &u.Username, &u.CreatedAt); err != nil {
		return nil, postgres.MapError(err, "user", username)
	}

	return &u, nil
}
