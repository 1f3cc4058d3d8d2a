package token

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	maker := NewMaker("test-secret", time.Hour)
	userID := uuid.New()

	tokenStr, err := maker.Issue(userID)
	require.NoError(t, err)
	require.NotEmpty(t, tokenStr)

	got, err := maker.Verify(tokenStr)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	maker := NewMaker("test-secret", -time.Minute)

	tokenStr, err := maker.Issue(uuid.New())
	require.NoError(t, err)

	_, err = maker.Verify(tokenStr)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	tokenStr, err := NewMaker("secret-a", time.Hour).Issue(uuid.New())
	require.NoError(t, err)

	_, err = NewMaker("secret-b", time.Hour).Verify(tokenStr)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsMalformedToken(t *testing.T) {
	maker := NewMaker("test-secret", time.Hour)

	for _, tokenStr := range []string{"", "garbage", "a.b.c", "{not-a-jwt}"} {
		_, err := maker.Verify(tokenStr)
		assert.ErrorIs(t, err, ErrInvalidToken, "token %q", tokenStr)
	}
}
