// Package topic implements the topic lifecycle: creation, viewing, editing,
// and deletion of discussion topics. Every mutation is authorized through
// the OwnershipGuard and bound to an existing category through the resolver;
// a failed validation or resolution never leaves a partial write behind.
package topic

import (
	"context"
	"log/slog"
	"time"

	"github.com/avolkov-dev/forum-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type topicRepo interface {
	GetByID(ctx context.Context, id int64, include domain.TopicInclude) (*domain.Topic, error)
	Insert(ctx context.Context, topic *domain.Topic) (*domain.Topic, error)
	Update(ctx context.Context, id int64, params domain.TopicUpdateParams) (*domain.Topic, error)
	Delete(ctx context.Context, id int64) error
}

type categoryResolver interface {
	Resolve(ctx context.Context, name string) (int64, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type clock interface {
	Now() time.Time
}

// Limits caps the content fields, configured via config.ForumConfig.
type Limits struct {
	MaxTitleLength       int
	MaxDescriptionLength int
}

// DefaultLimits matches the config defaults.
func DefaultLimits() Limits {
	return Limits{MaxTitleLength: 200, MaxDescriptionLength: 10000}
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the topic lifecycle business logic.
type Service struct {
	topics     topicRepo
	categories categoryResolver
	guard      OwnershipGuard
	audit      auditLogger
	tx         txManager
	clock      clock
	limits     Limits
	log        *slog.Logger
}

// NewService creates a new Topic service.
func NewService(
	log *slog.Logger,
	topics topicRepo,
	categories categoryResolver,
	audit auditLogger,
	tx txManager,
	clk clock,
	limits Limits,
) *Service {
	if limits.MaxTitleLength <= 0 || limits.MaxDescriptionLength <= 0 {
		limits = DefaultLimits()
	}

	return &Service{
		topics:     topics,
		categories: categories,
		guard:      OwnershipGuard{},
		audit:      audit,
		tx:         tx,
		clock:      clk,
		limits:     limits,
		log:        log.With("service", "topic"),
	}
}
