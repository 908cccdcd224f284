package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/vgen-labs/vgen-backend/internal/shared"
)

// TokenService issues and validates signed bearer tokens (JWT, HS256).
// Tokens carry a fixed claim set; no state is kept server-side, validity is
// a pure function of the token bytes, the secret and the clock.
type TokenService struct {
	secret []byte
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret)}
}

func (s *TokenService) Issue(subject string, ttl time.Duration) (string, error) {
	now := time.Now()

	// exp is serialized at whole-second precision; round up so any ttl > 0
	// yields a token that is still valid at issue time
	expiry := now.Add(ttl).Truncate(time.Second)
	if expiry.Before(now.Add(ttl)) {
		expiry = expiry.Add(time.Second)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiry),
		ID:        uuid.NewString(),
	})
	return token.SignedString(s.secret)
}

// Validate returns the subject claim. Malformed, expired and badly signed
// tokens all collapse to shared.ErrInvalidToken.
func (s *TokenService) Validate(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return "", shared.ErrInvalidToken
	}

	if claims.Subject == "" {
		return "", shared.ErrInvalidToken
	}
	return claims.Subject, nil
}
