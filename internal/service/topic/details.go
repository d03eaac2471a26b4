package topic

import (
	"context"
	"fmt"

	"github.com/avolkov-dev/forum-backend/internal/domain"
)

// Details returns a topic with its author, category, and comments (each
// comment with its own author) for public display. No authorization is
// required: read access is open to everyone, including anonymous visitors.
func (s *Service) Details(ctx context.Context, id int64) (*domain.Topic, error) {
	topic, err := s.topics.GetByID(ctx, id, domain.TopicInclude{
		Author:   true,
		Category: true,
		Comments: true,
	})
	if err != nil {
		return nil, fmt.Errorf("get topic: %w", err)
	}

	return topic, nil
}
