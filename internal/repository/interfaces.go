package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sociogram/backend/internal/domain"
)

// UserRepository is the persistent collection of user records. Lookups
// return (nil, nil) when no record matches. Implementations must enforce
// username/email uniqueness atomically with the write, not as a separate
// check: Create fails with domain.ErrUsernameTaken or domain.ErrEmailTaken,
// Update with domain.ErrDuplicateUser when a different user already holds
// the value.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, id uuid.UUID, update domain.UserUpdate) error
}
