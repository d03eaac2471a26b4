package topic

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/avolkov-dev/forum-backend/internal/domain"
	"github.com/avolkov-dev/forum-backend/pkg/ctxutil"
)

// GetForDelete is the read phase of a deletion: it fetches the topic so a
// confirmation view can show what is about to be removed. Only the author
// may proceed.
func (s *Service) GetForDelete(ctx context.Context, id int64) (*domain.Topic, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	topic, err := s.topics.GetByID(ctx, id, domain.TopicInclude{Author: true})
	if err != nil {
		return nil, fmt.Errorf("get topic: %w", err)
	}

	if err := s.guard.Authorize(topic, userID); err != nil {
		return nil, err
	}

	return topic, nil
}

// Delete removes a topic and its comments. Ownership is re-checked against
// the persisted topic before the delete, independent of GetForDelete.
func (s *Service) Delete(ctx context.Context, id int64) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	topic, err := s.topics.GetByID(ctx, id, domain.TopicInclude{})
	if err != nil {
		return fmt.Errorf("get topic: %w", err)
	}

	if err := s.guard.Authorize(topic, userID); err != nil {
		return err
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if delErr := s.topics.Delete(txCtx, id); delErr != nil {
			return fmt.Errorf("delete topic: %w", delErr)
		}

		if auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeTopic,
			EntityID:   &id,
			Action:     domain.AuditActionDelete,
			Changes:    map[string]any{"title": topic.Title},
		}); auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "topic deleted",
		slog.String("user_id", userID.String()),
		slog.Int64("topic_id", id),
	)

	return nil
}
