// Package category implements the Category repository using PostgreSQL.
// Categories are curated outside the topic lifecycle; this repo only reads
// them, plus an idempotent insert used by the seeder.
package category

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	postgres "github.com/avolkov-dev/forum-backend/internal/adapter/postgres"
	"github.com/avolkov-dev/forum-backend/internal/domain"
)

// Repo provides category persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new category repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByName returns the category with the exact given name.
// The match is case-sensitive. Returns domain.ErrNotFound on a miss.
func (r *Repo) GetByName(ctx context.Context, name string) (*domain.Category, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Select("id", "name").
		From("categories").
		Where(squirrel.Eq{"name": name}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build category query: %w", err)
	}

	var c domain.Category
	if err := q.QueryRow(ctx, sql, args...).Scan(&c.ID, &c.Name); err != nil {
		return nil, postgres.MapError(err, "category", name)
	}

	return &c, nil
}

// ListNames returns all category names ordered alphabetically, for
// populating form choices. Returns an empty slice (not nil) when none exist.
func (r *Repo) ListNames(ctx context.Context) ([]string, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Select("name").
		From("categories").
		OrderBy("name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build category names query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list category names: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan category name: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list category names: %w", err)
	}

	if names == nil {
		names = []string{}
	}

	return names, nil
}

// Ensure inserts a category if it does not exist yet and returns the stored
// row either way. Used by the external curation tooling (cmd/seed), never by
// the topic lifecycle.
func (r *Repo) Ensure(ctx context.Context, name string) (*domain.Category, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	const ensureSQL = `
INSERT INTO categories (name) VALUES ($1)
ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
RETURNING id, name`

	var c domain.Category
	if err := q.QueryRow(ctx, ensureSQL, name).Scan(&c.ID, &c.Name); err != nil {
		return nil, postgres.MapError(err, "category", name)
	}

	return &c, nil
}
