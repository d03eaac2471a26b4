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

// Create validates the input, binds it to an existing category, and persists
// a new topic owned by the acting user. Both audit timestamps are set to the
// same instant. An unknown category name is a form-level validation failure
// with an explicit field error, not a system error, and nothing is persisted.
func (s *Service) Create(ctx context.Context, input CreateTopicInput) (*domain.Topic, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(s.limits); err != nil {
		return nil, err
	}

	categoryID, err := s.categories.Resolve(ctx, input.CategoryName)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewValidationError("category_name", "unknown category")
		}
		return nil, fmt.Errorf("resolve category: %w", err)
	}

	now := s.clock.Now()
	topic := &domain.Topic{
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		AuthorID:    userID,
		CategoryID:  categoryID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	var stored *domain.Topic
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var insertErr error
		stored, insertErr = s.topics.Insert(txCtx, topic)
		if insertErr != nil {
			return fmt.Errorf("insert topic: %w", insertErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeTopic,
			EntityID:   &stored.ID,
			Action:     domain.AuditActionCreate,
			Changes: map[string]any{
				"title":    map[string]any{"new": stored.Title},
				"category": map[string]any{"new": input.CategoryName},
			},
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "topic created",
		slog.String("user_id", userID.String()),
		slog.Int64("topic_id", stored.ID),
		slog.String("title", stored.Title),
	)

	return stored, nil
}
