package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sociogram/backend/internal/domain"
	"github.com/sociogram/backend/internal/password"
	"github.com/sociogram/backend/internal/repository"
	"github.com/sociogram/backend/internal/token"
)

// AccountService implements the signup, login and profile use cases on top
// of the user store, the password hasher and the session token maker.
type AccountService struct {
	users  repository.UserRepository
	tokens *token.Maker
}

func NewAccountService(users repository.UserRepository, tokens *token.Maker) *AccountService {
	return &AccountService{users: users, tokens: tokens}
}

// TokenTTL exposes the session lifetime so the transport can align the
// cookie expiry with the token's own.
func (s *AccountService) TokenTTL() time.Duration {
	return s.tokens.TTL()
}

type SignupInput struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Bio      string `json:"bio"      validate:"omitempty"`
}

type LoginInput struct {
	UserID   string `json:"userId"   validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Signup creates the account. Username is checked before email, so a
// request conflicting on both reports the username; the store's own
// uniqueness constraint backstops the race between check and insert.
func (s *AccountService) Signup(ctx context.Context, input SignupInput) (*domain.User, error) {
	existing, err := s.users.GetByUsername(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrUsernameTaken
	}

	existing, err = s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailTaken
	}

	hash, err := password.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	bio := input.Bio
	if bio == "" {
		bio = domain.DefaultBio
	}

	now := time.Now()
	user := &domain.User{
		ID:           uuid.New(),
		Name:         input.Name,
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		Bio:          bio,
		Posts:        []uuid.UUID{},
		Saved:        []uuid.UUID{},
		Followers:    []uuid.UUID{},
		Following:    []uuid.UUID{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login resolves the identifier as a username first and an email second,
// verifies the password and issues a session token.
func (s *AccountService) Login(ctx context.Context, input LoginInput) (*domain.User, string, error) {
	user, err := s.users.GetByUsername(ctx, input.UserID)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		user, err = s.users.GetByEmail(ctx, input.UserID)
		if err != nil {
			return nil, "", err
		}
	}
	if user == nil {
		return nil, "", domain.ErrUserNotFound
	}

	if !password.Verify(input.Password, user.PasswordHash) {
		return nil, "", domain.ErrPasswordMismatch
	}

	tokenStr, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("issuing token: %w", err)
	}
	return user, tokenStr, nil
}

func (s *AccountService) Profile(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

// UpdateProfile merges the present fields into the stored record; absent
// fields are left untouched.
func (s *AccountService) UpdateProfile(ctx context.Context, userID uuid.UUID, update domain.UserUpdate) error {
	return s.users.Update(ctx, userID, update)
}
