package auth

import (
	"context"
	"database/sql"

	"github.com/vgen-labs/vgen-backend/internal/shared"
)

type postgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) CredentialStore {
	return &postgresStore{db: db}
}

func (s *postgresStore) FindDigest(ctx context.Context, username string) (string, error) {
	var digest string
	err := s.db.QueryRowContext(
		ctx,
		`SELECT password FROM users WHERE username = $1`,
		username,
	).Scan(&digest)

	if err == sql.ErrNoRows {
		return "", shared.ErrNotFound
	}
	return digest, err
}
