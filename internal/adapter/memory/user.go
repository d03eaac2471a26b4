package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/avolkov-dev/forum-backend/internal/domain"
)

// UserRepo is the in-memory user repository.
type UserRepo struct {
	s *Store
}

// GetByID returns a user by primary key.
func (r *UserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u, ok := r.s.users[id]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}

	stored := u
	return &stored, nil
}

// GetByUsername returns a user by their unique username.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, u := range r.s.users {
		if u.Username == username {
			stored := u
			return &stored, nil
		}
	}

	return nil, fmt.Errorf("user %q: %w", username, domain.ErrNotFound)
}

// Ensure inserts a user with the given username if absent and returns the
// stored row either way.
func (r *UserRepo) Ensure(ctx context.Context, username string) (*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, u := range r.s.users {
		if u.Username == username {
			stored := u
			return &stored, nil
		}
	}

	u := domain.User{ID: uuid.New(), Username: username, CreatedAt: time.Now().UTC()}
	r.s.users[u.ID] = u

	stored := u
	return &stored, nil
}
