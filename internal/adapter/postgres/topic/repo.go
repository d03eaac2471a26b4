// Package topic implements the Topic repository using PostgreSQL.
// Reads support eager-loading of the author, category, and comments;
// deleting a topic removes its comments via ON DELETE CASCADE.
package topic

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	postgres "github.com/avolkov-dev/forum-backend/internal/adapter/postgres"
	"github.com/avolkov-dev/forum-backend/internal/domain"
)

const topicCols = "t.id, t.title, t.description, t.author_id, t.category_id, t.created_at, t.updated_at"

// Repo provides topic persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new topic repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a topic by primary key, eager-loading the associations
// selected by include. Returns domain.ErrNotFound if no such topic exists.
func (r *Repo) GetByID(ctx context.Context, id int64, include domain.TopicInclude) (*domain.Topic, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	cols := topicCols
	builder := postgres.Builder().
		Select().
		From("topics t").
		Where(squirrel.Eq{"t.id": id})

	if include.Author {
		cols += ", u.id, u.username, u.created_at"
		builder = builder.Join("users u ON u.id = t.author_id")
	}
	if include.Category {
		cols += ", c.id, c.name"
		builder = builder.Join("categories c ON c.id = t.category_id")
	}
	builder = builder.Columns(cols)

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build topic query: %w", err)
	}

	var (
		topic    domain.Topic
		author   domain.User
		category domain.Category
	)

	dest := []any{
		&topic.ID, &topic.Title, &topic.Description, &topic.AuthorID,
		&topic.CategoryID, &topic.CreatedAt, &topic.UpdatedAt,
	}
	if include.Author {
		dest = append(dest, &author.ID, &author.Username, &author.CreatedAt)
	}
	if include.Category {
		dest = append(dest, &category.ID, &category.Name)
	}

	if err := q.QueryRow(ctx, sql, args...).Scan(dest...); err != nil {
		return nil, postgres.MapError(err, "topic", id)
	}

	if include.Author {
		topic.Author = &author
	}
	if include.Category {
		topic.Category = &category
	}
	if include.Comments {
		comments, err := r.commentsByTopic(ctx, q, id)
		if err != nil {
			return nil, err
		}
		topic.Comments = comments
	}

	return &topic, nil
}

const commentsByTopicSQL = `
SELECT
    cm.id, cm.topic_id, cm.author_id, cm.text, cm.created_at,
    u.id, u.username, u.created_at
FROM comments cm
JOIN users u ON u.id = cm.author_id
WHERE cm.topic_id = $1
ORDER BY cm.created_at, cm.id`

// commentsByTopic loads the topic's comments with their authors, oldest first.
// Returns an empty slice (not nil) when the topic has no comments.
func (r *Repo) commentsByTopic(ctx context.Context, q postgres.Querier, topicID int64) ([]domain.Comment, error) {
	rows, err := q.Query(ctx, commentsByTopicSQL, topicID)
	if err != nil {
		return nil, fmt.Errorf("list comments by topic: %w", err)
	}
	defer rows.Close()

	var comments []domain.Comment
	for rows.Next() {
		var (
			cm     domain.Comment
			author domain.User
		)
		if err := rows.Scan(
			&cm.ID, &cm.TopicID, &cm.AuthorID, &cm.Text, &cm.CreatedAt,
			&author.ID, &author.Username, &author.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		cm.Author = &author
		comments = append(comments, cm)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list comments by topic: %w", err)
	}

	if comments == nil {
		comments = []domain.Comment{}
	}

	return comments, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Insert persists a new topic and returns it with the storage-assigned ID.
// Returns domain.ErrNotFound if author_id or category_id dangles (FK violation).
func (r *Repo) Insert(ctx context.Context, topic *domain.Topic) (*domain.Topic, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Insert("topics").
		Columns("title", "description", "author_id", "category_id", "created_at", "updated_at").
		Values(topic.Title, topic.Description, topic.AuthorID, topic.CategoryID, topic.CreatedAt, topic.UpdatedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build topic insert: %w", err)
	}

	stored := *topic
	if err := q.QueryRow(ctx, sql, args...).Scan(&stored.ID); err != nil {
		return nil, postgres.MapError(err, "topic", topic.Title)
	}

	return &stored, nil
}

// Update applies the mutable fields to an existing topic and returns the
// updated row. author_id and created_at are never touched.
// Returns domain.ErrNotFound if the topic does not exist.
func (r *Repo) Update(ctx context.Context, id int64, params domain.TopicUpdateParams) (*domain.Topic, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Update("topics t").
		Set("title", params.Title).
		Set("description", params.Description).
		Set("category_id", params.CategoryID).
		Set("updated_at", params.UpdatedAt).
		Where(squirrel.Eq{"t.id": id}).
		Suffix("RETURNING " + topicCols).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build topic update: %w", err)
	}

	var topic domain.Topic
	err = q.QueryRow(ctx, sql, args...).Scan(
		&topic.ID, &topic.Title, &topic.Description, &topic.AuthorID,
		&topic.CategoryID, &topic.CreatedAt, &topic.UpdatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "topic", id)
	}

	return &topic, nil
}

// Delete removes a topic permanently. Comments go with it via the FK cascade.
// Returns domain.ErrNotFound if the topic does not exist.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Delete("topics").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build topic delete: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "topic", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("topic %d: %w", id, domain.ErrNotFound)
	}

	return nil
}
