package domain

import (
	"time"

	"github.com/google/uuid"
)

// Topic is a user-authored discussion thread. The ID is assigned by storage
// on insert and never changes; AuthorID is set once at creation and is never
// reassigned through the edit path.
type Topic struct {
	ID          int64
	Title       string
	Description string
	AuthorID    uuid.UUID
	CategoryID  int64
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Loaded on request via TopicInclude; nil/empty otherwise.
	Author   *User
	Category *Category
	Comments []Comment
}

// IsAuthoredBy reports whether the topic belongs to the given user.
func (t *Topic) IsAuthoredBy(userID uuid.UUID) bool {
	return userID != uuid.Nil && t.AuthorID == userID
}

// TopicInclude selects which associations a topic read should eager-load.
// Comments implies the comment authors as well.
type TopicInclude struct {
	Author   bool
	Category bool
	Comments bool
}

// TopicUpdateParams carries the mutable fields of a topic for the write
// phase of an edit. AuthorID and CreatedAt are deliberately absent.
type TopicUpdateParams struct {
	Title       string
	Description string
	CategoryID  int64
	UpdatedAt   time.Time
}

// Comment is a reply attached to a topic. Comments are read-only in this
// core; they are removed together with their topic by the storage cascade.
type Comment struct {
	ID        int64
	TopicID   int64
	AuthorID  uuid.UUID
	Text      string
	CreatedAt time.Time

	Author *User
}
