package queries

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/rental-project/rental-server/internal/models"
)

type UserQueries struct {
	db *sqlx.DB
}

func NewUserQueries(db *sqlx.DB) *UserQueries {
	return &UserQueries{db: db}
}

// userColumns deliberately leaves the password hash out of read paths.
const userColumns = `
	id, username, name, surname, date_of_birth, nationality, address,
	gender, phone_number, profile_picture, active, roles,
	created_at, updated_at
`

// ListUsers returns every user without the password column
func (q *UserQueries) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at`
	err := q.db.SelectContext(ctx, &users, query)
	return users, err
}

// GetUserByID retrieves a user by ID, password hash included
func (q *UserQueries) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	query := `SELECT * FROM users WHERE id = $1`
	if err := q.db.GetContext(ctx, &user, query, id); err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByUsername retrieves a user by its unique username
func (q *UserQueries) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	query := `SELECT * FROM users WHERE username = $1`
	if err := q.db.GetContext(ctx, &user, query, username); err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateUser inserts a new user into the database
func (q *UserQueries) CreateUser(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (id, username, password, roles)
		VALUES (:id, :username, :password, :roles)
	`
	_, err := q.db.NamedExecContext(ctx, query, user)
	return err
}

// UpdateUser overwrites every column of an existing user
func (q *UserQueries) UpdateUser(ctx context.Context, user *models.User) error {
	query := `
		UPDATE users SET
			username = :username, password = :password, roles = :roles,
			active = :active, name = :name, surname = :surname,
			date_of_birth = :date_of_birth, nationality = :nationality,
			address = :address, gender = :gender,
			phone_number = :phone_number, profile_picture = :profile_picture,
			updated_at = now()
		WHERE id = :id
	`
	_, err := q.db.NamedExecContext(ctx, query, user)
	return err
}

// DeleteUser removes a user by ID
func (q *UserQueries) DeleteUser(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM users WHERE id = $1`
	_, err := q.db.ExecContext(ctx, query, id)
	return err
}

// GetUsernamesByIDs resolves usernames for a set of user IDs in one query.
// Used by the car listing to attach owner usernames without per-row lookups.
func (q *UserQueries) GetUsernamesByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	usernames := make(map[uuid.UUID]string, len(ids))
	if len(ids) == 0 {
		return usernames, nil
	}
	strIDs := make([]string, len(ids))
	for i, id := range ids {
		strIDs[i] = id.String()
	}
	rows := []struct {
		ID       uuid.UUID `db:"id"`
		Username string    `db:"username"`
	}{}
	query := `SELECT id, username FROM users WHERE id = ANY($1::uuid[])`
	if err := q.db.SelectContext(ctx, &rows, query, pq.Array(strIDs)); err != nil {
		return nil, err
	}
	for _, row := range rows {
		usernames[row.ID] = row.Username
	}
	return usernames, nil
}
