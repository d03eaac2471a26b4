package domain

import (
	"time"

	"github.com/google/uuid"
)

// EntityType names the kind of entity an audit record refers to.
type EntityType string

const (
	EntityTypeTopic    EntityType = "TOPIC"
	EntityTypeCategory EntityType = "CATEGORY"
	EntityTypeComment  EntityType = "COMMENT"
)

func (t EntityType) String() string { return string(t) }

func (t EntityType) IsValid() bool {
	switch t {
	case EntityTypeTopic, EntityTypeCategory, EntityTypeComment:
		return true
	}
	return false
}

// AuditAction represents the kind of mutation recorded in the audit log.
type AuditAction string

const (
	AuditActionCreate AuditAction = "CREATE"
	AuditActionUpdate AuditAction = "UPDATE"
	AuditActionDelete AuditAction = "DELETE"
)

func (a AuditAction) String() string { return string(a) }

func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionCreate, AuditActionUpdate, AuditActionDelete:
		return true
	}
	return false
}

// AuditRecord logs a mutation event on a domain entity. EntityID is the
// storage-assigned id of the entity (topics and comments use int64 keys).
type AuditRecord struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	EntityType EntityType
	EntityID   *int64
	Action     AuditAction
	Changes    map[string]any
	CreatedAt  time.Time
}
