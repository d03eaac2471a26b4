package topic

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/avolkov-dev/forum-backend/internal/domain"
)

// OwnershipGuard decides whether an acting user may mutate a topic.
// The check compares stable user ids, never display names: the identity
// boundary resolves the authenticated principal's name to an id before any
// request reaches this package (see internal/auth). The same rule applies
// to every mutating phase of Edit and Delete — the write phase re-checks
// against the persisted topic rather than trusting that the read phase ran.
type OwnershipGuard struct{}

// Authorize returns nil when actingUserID owns the topic and a
// domain.ErrForbidden error otherwise. A nil acting id is never an owner.
func (OwnershipGuard) Authorize(topic *domain.Topic, actingUserID uuid.UUID) error {
	if topic == nil || !topic.IsAuthoredBy(actingUserID) {
		return fmt.Errorf("user %s does not own topic: %w", actingUserID, domain.ErrForbidden)
	}
	return nil
}

// IsOwner reports ownership without constructing an error.
func (g OwnershipGuard) IsOwner(topic *domain.Topic, actingUserID uuid.UUID) bool {
	return topic != nil && topic.IsAuthoredBy(actingUserID)
}
