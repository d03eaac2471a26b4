// Package category resolves human-supplied category names to stable ids.
// Resolution is read-only: an unknown name is a caller-visible failure,
// never an implicit create. Category administration is external.
package category

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/avolkov-dev/forum-backend/internal/domain"
)

type categoryRepo interface {
	GetByName(ctx context.Context, name string) (*domain.Category, error)
	ListNames(ctx context.Context) ([]string, error)
}

// Resolver maps category names to categories.
type Resolver struct {
	categories categoryRepo
	log        *slog.Logger
}

// NewResolver creates a new category resolver.
func NewResolver(log *slog.Logger, categories categoryRepo) *Resolver {
	return &Resolver{
		categories: categories,
		log:        log.With("service", "category"),
	}
}

// Resolve returns the id of the category with the exact given name.
// Matching is case-sensitive: "General" and "general" are different names.
// Returns domain.ErrNotFound on a miss.
func (r *Resolver) Resolve(ctx context.Context, name string) (int64, error) {
	c, err := r.categories.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			r.log.DebugContext(ctx, "category name did not resolve", slog.String("name", name))
			return 0, fmt.Errorf("category %q: %w", name, domain.ErrNotFound)
		}
		return 0, fmt.Errorf("resolve category %q: %w", name, err)
	}

	return c.ID, nil
}

// ListNames returns all category names for populating form choices.
func (r *Resolver) ListNames(ctx context.Context) ([]string, error) {
	names, err := r.categories.ListNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("list category names: %w", err)
	}
	return names, nil
}
