package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/avolkov-dev/forum-backend/internal/domain"
)

// CategoryRepo is the in-memory category repository.
type CategoryRepo struct {
	s *Store
}

// GetByName returns the category with the exact given name.
// The match is case-sensitive, matching the postgres adapter.
func (r *CategoryRepo) GetByName(ctx context.Context, name string) (*domain.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, c := range r.s.categories {
		if c.Name == name {
			stored := c
			return &stored, nil
		}
	}

	return nil, fmt.Errorf("category %q: %w", name, domain.ErrNotFound)
}

// ListNames returns all category names ordered alphabetically.
func (r *CategoryRepo) ListNames(ctx context.Context) ([]string, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	names := []string{}
	for _, c := range r.s.categories {
		names = append(names, c.Name)
	}
	sort.Strings(names)

	return names, nil
}

// Ensure inserts a category if absent and returns the stored row either way.
func (r *CategoryRepo) Ensure(ctx context.Context, name string) (*domain.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, c := range r.s.categories {
		if c.Name == name {
			stored := c
			return &stored, nil
		}
	}

	r.s.nextCategoryID++
	c := domain.Category{ID: r.s.nextCategoryID, Name: name}
	r.s.categories[c.ID] = c

	stored := c
	return &stored, nil
}
