package auth

import "context"

// CredentialStore reads credentials provisioned out-of-band (cmd/adduser).
type CredentialStore interface {
	FindDigest(ctx context.Context, username string) (string, error)
}

// Service handles login and request authorization.
type Service interface {
	Login(ctx context.Context, username, password string) (string, error)
	Authorize(token string) (string, error)
}
