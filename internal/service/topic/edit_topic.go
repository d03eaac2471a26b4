package topic

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/avolkov-dev/forum-backend/internal/domain"
	"github.com/avolkov-dev/forum-backend/pkg/ctxutil"
)

// GetForEdit is the read phase of an edit: it fetches the topic with its
// author and category loaded for a pre-filled form. Only the author may
// proceed past this point.
func (s *Service) GetForEdit(ctx context.Context, id int64) (*domain.Topic, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	topic, err := s.topics.GetByID(ctx, id, domain.TopicInclude{Author: true, Category: true})
	if err != nil {
		return nil, fmt.Errorf("get topic: %w", err)
	}

	if err := s.guard.Authorize(topic, userID); err != nil {
		return nil, err
	}

	return topic, nil
}

// Edit is the write phase: it re-validates, re-checks ownership against the
// persisted topic, and applies the changes. Ownership is verified here even
// though GetForEdit already checked it — the write phase cannot assume the
// read phase was ever invoked. The author and creation timestamp are never
// touched; only title, description, category, and updated_at change.
func (s *Service) Edit(ctx context.Context, input EditTopicInput) (*domain.Topic, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(s.limits); err != nil {
		return nil, err
	}

	current, err := s.topics.GetByID(ctx, input.ID, domain.TopicInclude{Author: true})
	if err != nil {
		return nil, fmt.Errorf("get topic: %w", err)
	}

	if err := s.guard.Authorize(current, userID); err != nil {
		return nil, err
	}

	categoryID, err := s.categories.Resolve(ctx, input.CategoryName)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewValidationError("category_name", "unknown category")
		}
		return nil, fmt.Errorf("resolve category: %w", err)
	}

	params := domain.TopicUpdateParams{
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		CategoryID:  categoryID,
		UpdatedAt:   s.clock.Now(),
	}

	var updated *domain.Topic
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var updateErr error
		updated, updateErr = s.topics.Update(txCtx, input.ID, params)
		if updateErr != nil {
			return fmt.Errorf("update topic: %w", updateErr)
		}

		// Skip audit if nothing actually changed.
		changes := buildTopicChanges(current, updated)
		if len(changes) > 0 {
			if auditErr := s.audit.Log(txCtx, domain.AuditRecord{
				UserID:     userID,
				EntityType: domain.EntityTypeTopic,
				EntityID:   &input.ID,
				Action:     domain.AuditActionUpdate,
				Changes:    changes,
			}); auditErr != nil {
				return fmt.Errorf("audit log: %w", auditErr)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "topic updated",
		slog.String("user_id", userID.String()),
		slog.Int64("topic_id", input.ID),
	)

	return updated, nil
}

// buildTopicChanges returns only changed fields for audit.
func buildTopicChanges(old, updated *domain.Topic) map[string]any {
	changes := make(map[string]any)
	if old.Title != updated.Title {
		changes["title"] = map[string]any{"old": old.Title, "new": updated.Title}
	}
	if old.Description != updated.Description {
		changes["description"] = map[string]any{"old": old.Description, "new": updated.Description}
	}
	if old.CategoryID != updated.CategoryID {
		changes["category_id"] = map[string]any{"old": old.CategoryID, "new": updated.CategoryID}
	}
	return changes
}
