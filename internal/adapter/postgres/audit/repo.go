// Package audit implements the audit-log repository using PostgreSQL.
// Records are append-only and written in the same transaction as the
// mutation they describe.
package audit

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	postgres "github.com/avolkov-dev/forum-backend/internal/adapter/postgres"
	"github.com/avolkov-dev/forum-backend/internal/domain"
)

// Repo provides audit log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new audit repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const insertSQL = `
INSERT INTO audit_log (id, user_id, entity_type, entity_id, action, changes, created_at)
VALUES ($1, $2, $3, $4, $5, $6, now())`

// Log appends an audit record. The record's ID is generated here when unset.
func (r *Repo) Log(ctx context.Context, record domain.AuditRecord) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}

	changesJSON, err := json.Marshal(record.Changes)
	if err != nil {
		return fmt.Errorf("audit_record marshal changes: %w", err)
	}

	_, err = q.Exec(ctx, insertSQL,
		record.ID, record.UserID, record.EntityType.String(),
		record.EntityID, record.Action.String(), changesJSON,
	)
	if err != nil {
		return postgres.MapError(err, "audit_record", record.ID)
	}

	return nil
}

const byEntitySQL = `
SELECT id, user_id, entity_type, entity_id, action, changes, created_at
FROM audit_log
WHERE entity_type = $1 AND entity_id = $2
ORDER BY created_at DESC
LIMIT $3`

// GetByEntity returns the change history for a specific entity, newest first.
func (r *Repo) GetByEntity(ctx context.Context, entityType domain.EntityType, entityID int64, limit int) ([]domain.AuditRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := q.Query(ctx, byEntitySQL, entityType.String(), entityID, limit)
	if err != nil {
		return nil, fmt.Errorf("get audit_records by entity: %w", err)
	}
	defer rows.Close()

	var records []domain.AuditRecord
	for rows.Next() {
		var (
			rec         domain.AuditRecord
			entityType  string
			action      string
			changesJSON []byte
		)
		if err := rows.Scan(&rec.ID, &rec.UserID, &entityType, &rec.EntityID, &action, &changesJSON, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan audit_record: %w", err)
		}
		rec.EntityType = domain.EntityType(entityType)
		rec.Action = domain.AuditAction(action)
		if len(changesJSON) > 0 {
			if err := json.Unmarshal(changesJSON, &rec.Changes); err != nil {
				return nil, fmt.Errorf("audit_record unmarshal changes: %w", err)
			}
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get audit_records by entity: %w", err)
	}

	if records == nil {
		records = []domain.AuditRecord{}
	}

	return records, nil
}
