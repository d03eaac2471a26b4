package memory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/avolkov-dev/forum-backend/internal/domain"
)

// AuditLog is the in-memory append-only audit log.
type AuditLog struct {
	s *Store
}

// Log appends an audit record. The record's ID is generated here when unset.
func (l *AuditLog) Log(ctx context.Context, record domain.AuditRecord) error {
	l.s.mu.Lock()
	defer l.s.mu.Unlock()

	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}
	l.s.audit = append(l.s.audit, record)

	return nil
}

// Records returns a snapshot of all audit records in append order.
func (l *AuditLog) Records() []domain.AuditRecord {
	l.s.mu.RLock()
	defer l.s.mu.RUnlock()

	out := make([]domain.AuditRecord, len(l.s.audit))
	copy(out, l.s.audit)
	return out
}
