package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sociogram/backend/internal/domain"
	"github.com/sociogram/backend/internal/password"
	"github.com/sociogram/backend/internal/repository/memory"
	"github.com/sociogram/backend/internal/token"
)

func newTestService() *AccountService {
	return NewAccountService(memory.NewUserRepo(), token.NewMaker("test-secret", time.Hour))
}

func signupInput() SignupInput {
	return SignupInput{
		Name:     "Alice Doe",
		Email:    "alice@example.com",
		Username: "alice",
		Password: "password123",
	}
}

func TestSignup(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	user, err := svc.Signup(ctx, signupInput())
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, domain.DefaultBio, user.Bio)
	assert.Empty(t, user.Posts)
	assert.Empty(t, user.Followers)
	assert.NotEqual(t, "password123", user.PasswordHash)
	assert.True(t, password.Verify("password123", user.PasswordHash))
}

func TestSignupKeepsSuppliedBio(t *testing.T) {
	svc := newTestService()

	input := signupInput()
	input.Bio = "building things"
	user, err := svc.Signup(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, "building things", user.Bio)
}

func TestSignupConflicts(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()
	_, err := svc.Signup(ctx, signupInput())
	require.NoError(t, err)

	tests := []struct {
		name    string
		mutate  func(*SignupInput)
		wantErr error
	}{
		{"same username", func(in *SignupInput) { in.Email = "other@example.com" }, domain.ErrUsernameTaken},
		{"same email", func(in *SignupInput) { in.Username = "different" }, domain.ErrEmailTaken},
		{"same username and email", func(*SignupInput) {}, domain.ErrUsernameTaken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := signupInput()
			tt.mutate(&input)
			_, err := svc.Signup(ctx, input)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoginResolvesUsernameThenEmail(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()
	created, err := svc.Signup(ctx, signupInput())
	require.NoError(t, err)

	for _, identifier := range []string{"alice", "alice@example.com"} {
		user, tokenStr, err := svc.Login(ctx, LoginInput{UserID: identifier, Password: "password123"})
		require.NoError(t, err, "identifier %q", identifier)
		assert.Equal(t, created.ID, user.ID)
		assert.NotEmpty(t, tokenStr)
	}
}

func TestLoginFailures(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()
	_, err := svc.Signup(ctx, signupInput())
	require.NoError(t, err)

	tests := []struct {
		name    string
		input   LoginInput
		wantErr error
	}{
		{"unknown identifier", LoginInput{UserID: "nobody", Password: "password123"}, domain.ErrUserNotFound},
		{"unknown email", LoginInput{UserID: "wrong@example.com", Password: "password123"}, domain.ErrUserNotFound},
		{"wrong password", LoginInput{UserID: "alice", Password: "wrong password"}, domain.ErrPasswordMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := svc.Login(ctx, tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoginTokenResolvesBackToUser(t *testing.T) {
	ctx := context.Background()
	tokens := token.NewMaker("test-secret", time.Hour)
	svc := NewAccountService(memory.NewUserRepo(), tokens)

	created, err := svc.Signup(ctx, signupInput())
	require.NoError(t, err)

	_, tokenStr, err := svc.Login(ctx, LoginInput{UserID: "alice", Password: "password123"})
	require.NoError(t, err)

	userID, err := tokens.Verify(tokenStr)
	require.NoError(t, err)
	assert.Equal(t, created.ID, userID)
}

func TestProfile(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()
	created, err := svc.Signup(ctx, signupInput())
	require.NoError(t, err)

	user, err := svc.Profile(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Username, user.Username)

	_, err = svc.Profile(ctx, uuid.New())
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()
	created, err := svc.Signup(ctx, signupInput())
	require.NoError(t, err)

	name, username, email := "Updated Name", "updated", "updated@example.com"
	err = svc.UpdateProfile(ctx, created.ID, domain.UserUpdate{Name: &name, Username: &username, Email: &email})
	require.NoError(t, err)

	got, err := svc.Profile(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Updated Name", got.Name)
	assert.Equal(t, "updated", got.Username)
	assert.Equal(t, "updated@example.com", got.Email)
	assert.Equal(t, domain.DefaultBio, got.Bio, "untouched field must survive the merge")

	// Re-submitting the user's own current values is idempotent.
	err = svc.UpdateProfile(ctx, created.ID, domain.UserUpdate{Username: &username, Email: &email})
	require.NoError(t, err)
}

func TestUpdateProfileConflictsWithOtherUser(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()
	alice, err := svc.Signup(ctx, signupInput())
	require.NoError(t, err)

	other := signupInput()
	other.Username = "bob"
	other.Email = "bob@example.com"
	_, err = svc.Signup(ctx, other)
	require.NoError(t, err)

	taken := "bob"
	err = svc.UpdateProfile(ctx, alice.ID, domain.UserUpdate{Username: &taken})
	assert.ErrorIs(t, err, domain.ErrDuplicateUser)

	got, err := svc.Profile(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username, "failed update must leave the record unchanged")
}
