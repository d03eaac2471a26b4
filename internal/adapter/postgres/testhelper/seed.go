package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/avolkov-dev/forum-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with a unique username and returns it.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	user := domain.User{
		ID:        uuid.New(),
		Username:  "testuser-" + uniqueSuffix(),
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, username, created_at) VALUES ($1, $2, $3)`,
		user.ID, user.Username, user.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert: %v", err)
	}

	return user
}

// SeedCategory creates a category with a unique name and returns it.
func SeedCategory(t *testing.T, pool *pgxpool.Pool) domain.Category {
	t.Helper()
	ctx := context.Background()

	category := domain.Category{Name: "category-" + uniqueSuffix()}

	err := pool.QueryRow(ctx,
		`INSERT INTO categories (name) VALUES ($1) RETURNING id`,
		category.Name,
	).Scan(&category.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedCategory insert: %v", err)
	}

	return category
}

// SeedTopic creates a topic owned by author in the given category.
func SeedTopic(t *testing.T, pool *pgxpool.Pool, author domain.User, category domain.Category) domain.Topic {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	topic := domain.Topic{
		Title:       "Topic " + uniqueSuffix(),
		Description: "Seeded topic body.",
		AuthorID:    author.ID,
		CategoryID:  category.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO topics (title, description, author_id, category_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		topic.Title, topic.Description, topic.AuthorID, topic.CategoryID, topic.CreatedAt, topic.UpdatedAt,
	).Scan(&topic.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedTopic insert: %v", err)
	}

	return topic
}

// SeedComment attaches a comment by author to the given topic.
func SeedComment(t *testing.T, pool *pgxpool.Pool, topic domain.Topic, author domain.User, text string) domain.Comment {
	t.Helper()
	ctx := context.Background()

	comment := domain.Comment{
		TopicID:   topic.ID,
		AuthorID:  author.ID,
		Text:      text,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO comments (topic_id, author_id, text, created_at)
		 VALUES ($1, $2, $3, $4) RETURNING id`,
		comment.TopicID, comment.AuthorID, comment.Text, comment.CreatedAt,
	).Scan(&comment.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedComment insert: %v", err)
	}

	return comment
}
