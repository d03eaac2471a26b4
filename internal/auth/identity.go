// Package auth bridges the external authentication boundary and the core.
// Sessions, passwords, and login flows live outside this module; all we
// consume is the current user's name. The Resolver turns that name into the
// stable user ID the ownership checks compare against, so authorization
// never depends on display-name equality.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/avolkov-dev/forum-backend/internal/domain"
	"github.com/avolkov-dev/forum-backend/pkg/ctxutil"
)

type userRepo interface {
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

// Resolver maps authentication-boundary usernames to persistent users.
type Resolver struct {
	users userRepo
}

// NewResolver creates a new identity resolver.
func NewResolver(users userRepo) *Resolver {
	return &Resolver{users: users}
}

// ResolveUser returns the user behind the given username.
// Returns domain.ErrUnauthorized for an empty or unknown name: an
// unresolvable principal must not reach the service layer.
func (r *Resolver) ResolveUser(ctx context.Context, username string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, domain.ErrUnauthorized
	}

	user, err := r.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("resolve user %q: %w", username, err)
	}

	return user, nil
}

// ContextWithUser resolves the username and returns a child context carrying
// the user's ID, ready to be passed into the services.
func (r *Resolver) ContextWithUser(ctx context.Context, username string) (context.Context, error) {
	user, err := r.ResolveUser(ctx, username)
	if err != nil {
		return ctx, err
	}
	return ctxutil.WithUserID(ctx, user.ID), nil
}
