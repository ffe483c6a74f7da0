package models

import (
	"time"

	"github.com/google/uuid"
)

// Note represents a task assigned to a user. Notes are managed by a
// companion service; this backend only consults them to block deletion
// of users that still have assigned tasks.
type Note struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    uuid.UUID `json:"user" db:"user_id"`
	Title     string    `json:"title" db:"title"`
	Text      string    `json:"text" db:"text"`
	Completed bool      `json:"completed" db:"completed"`
	Ticket    int64     `json:"ticket" db:"ticket"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
