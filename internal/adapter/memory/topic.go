package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/avolkov-dev/forum-backend/internal/domain"
	"github.com/google/uuid"
)

// TopicRepo is the in-memory topic repository.
type TopicRepo struct {
	s *Store
}

// GetByID returns a copy of the topic, eager-loading the associations
// selected by include. Returns domain.ErrNotFound if no such topic exists.
func (r *TopicRepo) GetByID(ctx context.Context, id int64, include domain.TopicInclude) (*domain.Topic, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	stored, ok := r.s.topics[id]
	if !ok {
		return nil, fmt.Errorf("topic %d: %w", id, domain.ErrNotFound)
	}

	topic := stored
	if include.Author {
		if author, ok := r.s.users[topic.AuthorID]; ok {
			a := author
			topic.Author = &a
		}
	}
	if include.Category {
		if category, ok := r.s.categories[topic.CategoryID]; ok {
			c := category
			topic.Category = &c
		}
	}
	if include.Comments {
		topic.Comments = r.commentsByTopicLocked(id)
	}

	return &topic, nil
}

// commentsByTopicLocked collects the topic's comments with their authors,
// oldest first. Caller must hold at least the read lock.
func (r *TopicRepo) commentsByTopicLocked(topicID int64) []domain.Comment {
	comments := []domain.Comment{}
	for _, cm := range r.s.comments {
		if cm.TopicID != topicID {
			continue
		}
		if author, ok := r.s.users[cm.AuthorID]; ok {
			a := author
			cm.Author = &a
		}
		comments = append(comments, cm)
	}
	sort.Slice(comments, func(i, j int) bool {
		if comments[i].CreatedAt.Equal(comments[j].CreatedAt) {
			return comments[i].ID < comments[j].ID
		}
		return comments[i].CreatedAt.Before(comments[j].CreatedAt)
	})
	return comments
}

// Insert stores a new topic and returns it with the next assigned ID.
// Dangling author or category references are rejected, mirroring the
// postgres foreign keys.
func (r *TopicRepo) Insert(ctx context.Context, topic *domain.Topic) (*domain.Topic, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.users[topic.AuthorID]; !ok {
		return nil, fmt.Errorf("topic author %s: %w", topic.AuthorID, domain.ErrNotFound)
	}
	if _, ok := r.s.categories[topic.CategoryID]; !ok {
		return nil, fmt.Errorf("topic category %d: %w", topic.CategoryID, domain.ErrNotFound)
	}

	r.s.nextTopicID++
	stored := *topic
	stored.ID = r.s.nextTopicID
	stored.Author = nil
	stored.Category = nil
	stored.Comments = nil
	r.s.topics[stored.ID] = stored

	result := stored
	return &result, nil
}

// Update applies the mutable fields to an existing topic and returns the
// updated copy. AuthorID and CreatedAt are never touched.
func (r *TopicRepo) Update(ctx context.Context, id int64, params domain.TopicUpdateParams) (*domain.Topic, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored, ok := r.s.topics[id]
	if !ok {
		return nil, fmt.Errorf("topic %d: %w", id, domain.ErrNotFound)
	}
	if _, ok := r.s.categories[params.CategoryID]; !ok {
		return nil, fmt.Errorf("topic category %d: %w", params.CategoryID, domain.ErrNotFound)
	}

	stored.Title = params.Title
	stored.Description = params.Description
	stored.CategoryID = params.CategoryID
	stored.UpdatedAt = params.UpdatedAt
	r.s.topics[id] = stored

	result := stored
	return &result, nil
}

// Delete removes the topic and cascades to its comments.
func (r *TopicRepo) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.topics[id]; !ok {
		return fmt.Errorf("topic %d: %w", id, domain.ErrNotFound)
	}

	delete(r.s.topics, id)
	for cid, cm := range r.s.comments {
		if cm.TopicID == id {
			delete(r.s.comments, cid)
		}
	}

	return nil
}

// AddComment attaches a comment to a topic, for fixtures and future comment
// flows. The comment author must exist.
func (r *TopicRepo) AddComment(ctx context.Context, comment domain.Comment) (*domain.Comment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.topics[comment.TopicID]; !ok {
		return nil, fmt.Errorf("topic %d: %w", comment.TopicID, domain.ErrNotFound)
	}
	if comment.AuthorID == uuid.Nil {
		return nil, fmt.Errorf("comment author: %w", domain.ErrNotFound)
	}
	if _, ok := r.s.users[comment.AuthorID]; !ok {
		return nil, fmt.Errorf("comment author %s: %w", comment.AuthorID, domain.ErrNotFound)
	}

	r.s.nextCommentID++
	comment.ID = r.s.nextCommentID
	comment.Author = nil
	r.s.comments[comment.ID] = comment

	result := comment
	return &result, nil
}
