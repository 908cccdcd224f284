package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"time"

	"github.com/vgen-labs/vgen-backend/internal/shared"
)

type service struct {
	store  CredentialStore
	hasher *Hasher
	tokens *TokenService
	ttl    time.Duration
}

func NewService(store CredentialStore, hasher *Hasher, tokens *TokenService, ttl time.Duration) Service {
	return &service{
		store:  store,
		hasher: hasher,
		tokens: tokens,
		ttl:    ttl,
	}
}

// Login verifies the supplied credentials and issues a bearer token. An
// unknown username and a wrong password return the same error.
func (s *service) Login(ctx context.Context, username, password string) (string, error) {
	stored, err := s.store.FindDigest(ctx, username)
	if err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			return "", err
		}
		// hash anyway so an absent user costs the same as a wrong password
		stored = ""
	}

	candidate := s.hasher.Hash(password)
	if subtle.ConstantTimeCompare([]byte(stored), []byte(candidate)) != 1 {
		return "", shared.ErrUnauthorized
	}

	return s.tokens.Issue(username, s.ttl)
}

func (s *service) Authorize(token string) (string, error) {
	subject, err := s.tokens.Validate(token)
	if err != nil {
		return "", shared.ErrUnauthorized
	}
	return subject, nil
}
