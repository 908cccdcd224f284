package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vgen-labs/vgen-backend/internal/shared"
)

type fakeStore struct {
	digests map[string]string
}

func (f *fakeStore) FindDigest(_ context.Context, username string) (string, error) {
	d, ok := f.digests[username]
	if !ok {
		return "", shared.ErrNotFound
	}
	return d, nil
}

func newTestService(secret string, users map[string]string) (Service, *TokenService) {
	hasher := NewHasher(secret)
	digests := make(map[string]string, len(users))
	for name, password := range users {
		digests[name] = hasher.Hash(password)
	}
	tokens := NewTokenService(secret)
	return NewService(&fakeStore{digests: digests}, hasher, tokens, 48*time.Hour), tokens
}

func TestLogin_Success(t *testing.T) {
	t.Parallel()

	svc, tokens := newTestService("s3cret", map[string]string{"alice": "correct"})

	tok, err := svc.Login(context.Background(), "alice", "correct")
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	subject, err := tokens.Validate(tok)
	require.NoError(t, err)
	require.Equal(t, "alice", subject)
}

func TestLogin_WrongPassword(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService("s3cret", map[string]string{"alice": "correct"})

	_, err := svc.Login(context.Background(), "alice", "wrong")
	require.ErrorIs(t, err, shared.ErrUnauthorized)
}

func TestLogin_UnknownUser(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService("s3cret", map[string]string{"alice": "correct"})

	// same error shape as a wrong password
	_, err := svc.Login(context.Background(), "mallory", "correct")
	require.ErrorIs(t, err, shared.ErrUnauthorized)
}

func TestAuthorize_RoundTrip(t *testing.T) {
	t.Parallel()

	svc, tokens := newTestService("s3cret", nil)

	tok, err := tokens.Issue("bob", time.Minute)
	require.NoError(t, err)

	subject, err := svc.Authorize(tok)
	require.NoError(t, err)
	require.Equal(t, "bob", subject)
}

func TestAuthorize_InvalidToken(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService("s3cret", nil)

	_, err := svc.Authorize("garbage")
	require.ErrorIs(t, err, shared.ErrUnauthorized)
}

func TestAuthorize_ForeignSecret(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService("secret-a", nil)

	foreign, err := NewTokenService("secret-b").Issue("alice", time.Hour)
	require.NoError(t, err)

	_, err = svc.Authorize(foreign)
	require.ErrorIs(t, err, shared.ErrUnauthorized)
}
