package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// User represents a registered account (employee or customer-facing admin).
// The password column always holds a bcrypt hash, never plaintext.
type User struct {
	ID             uuid.UUID   `json:"id" db:"id"`
	Username       string      `json:"username" db:"username"`
	Password       string      `json:"-" db:"password"`
	Name           string      `json:"name" db:"name"`
	Surname        string      `json:"surname" db:"surname"`
	DateOfBirth    string      `json:"dateOfBirth" db:"date_of_birth"`
	Nationality    string      `json:"nationality" db:"nationality"`
	Address        string      `json:"address" db:"address"`
	Gender         string      `json:"gender" db:"gender"`
	PhoneNumber    string      `json:"phoneNumber" db:"phone_number"`
	ProfilePicture string      `json:"profilePicture" db:"profile_picture"`
	Active         bool        `json:"active" db:"active"`
	Roles          StringArray `json:"roles" db:"roles"`
	CreatedAt      time.Time   `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time   `json:"updatedAt" db:"updated_at"`
}

// StringArray type for PostgreSQL JSONB string-list columns
type StringArray []string

// Value implements driver.Valuer
func (s StringArray) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}
	return json.Marshal(s)
}

// Scan implements sql.Scanner
func (s *StringArray) Scan(value interface{}) error {
	if value == nil {
		*s = nil
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return nil
	}
	return json.Unmarshal(bytes, s)
}
