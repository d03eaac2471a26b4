package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents an authenticated forum user. Identity and sessions are
// managed outside this core; the authentication boundary hands us a
// username, which auth.Resolver maps to the stable ID used everywhere else.
type User struct {
	ID        uuid.UUID
	Username  string
	CreatedAt time.Time
}
