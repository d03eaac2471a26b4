// Package memory provides in-memory reference implementations of the
// repositories, guarded by a single mutex. It backs the service test
// suites and doubles as the storage for throwaway environments; the
// postgres adapter is the production counterpart.
package memory

import (
	"context"
	"sync"

	"github.com/avolkov-dev/forum-backend/internal/domain"
	"github.com/google/uuid"
)

// Store holds all forum state in process memory.
// Single-row operations are atomic under the store mutex, matching the
// atomicity the services expect from the persistence layer. There is no
// optimistic concurrency: concurrent edits race and the last write wins.
type Store struct {
	mu sync.RWMutex

	topics     map[int64]domain.Topic
	comments   map[int64]domain.Comment
	categories map[int64]domain.Category
	users      map[uuid.UUID]domain.User
	audit      []domain.AuditRecord

	nextTopicID    int64
	nextCommentID  int64
	nextCategoryID int64
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		topics:     make(map[int64]domain.Topic),
		comments:   make(map[int64]domain.Comment),
		categories: make(map[int64]domain.Category),
		users:      make(map[uuid.UUID]domain.User),
	}
}

// Topics returns the topic repository view of the store.
func (s *Store) Topics() *TopicRepo { return &TopicRepo{s: s} }

// Categories returns the category repository view of the store.
func (s *Store) Categories() *CategoryRepo { return &CategoryRepo{s: s} }

// Users returns the user repository view of the store.
func (s *Store) Users() *UserRepo { return &UserRepo{s: s} }

// Audit returns the audit log view of the store.
func (s *Store) Audit() *AuditLog { return &AuditLog{s: s} }

// RunInTx runs fn directly. The in-memory store has no transactions; each
// repository call is individually atomic, which is the only guarantee the
// services rely on.
func (s *Store) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// TopicCount reports the number of stored topics, for test assertions on
// the no-partial-write guarantee.
func (s *Store) TopicCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.topics)
}
