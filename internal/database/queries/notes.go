package queries

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// NoteQueries reads the notes table maintained by the task-tracking
// companion service. Only the delete-user guard needs it.
type NoteQueries struct {
	db *sqlx.DB
}

func NewNoteQueries(db *sqlx.DB) *NoteQueries {
	return &NoteQueries{db: db}
}

// UserHasNotes reports whether any note is still assigned to the user
func (q *NoteQueries) UserHasNotes(ctx context.Context, userID uuid.UUID) (bool, error) {
	var count int
	query := `SELECT count(*) FROM notes WHERE user_id = $1`
	if err := q.db.GetContext(ctx, &count, query, userID); err != nil {
		return false, err
	}
	return count > 0, nil
}
