package domain

import (
	"time"

	"github.com/google/uuid"
)

// DefaultBio is assigned to accounts created without a bio.
const DefaultBio = "Hi👋 Welcome To My Profile"

type User struct {
	ID           uuid.UUID   `json:"id"`
	Name         string      `json:"name"`
	Username     string      `json:"username"`
	Email        string      `json:"email"`
	PasswordHash string      `json:"-"`
	Bio          string      `json:"bio"`
	Posts        []uuid.UUID `json:"posts"`
	Saved        []uuid.UUID `json:"saved"`
	Followers    []uuid.UUID `json:"followers"`
	Following    []uuid.UUID `json:"following"`
	Revision     int32       `json:"revision"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// UserUpdate is a sparse change set: nil fields are left untouched.
// Password changes go through a separate flow and are not part of it.
type UserUpdate struct {
	Name     *string
	Username *string
	Email    *string
	Bio      *string
}

// Empty reports whether the update would change nothing.
func (u UserUpdate) Empty() bool {
	return u.Name == nil && u.Username == nil && u.Email == nil && u.Bio == nil
}
