package auth

import (
	"crypto/sha256"
	"encoding/hex"
)

// Hasher derives password digests using a single server-held secret as a
// global salt. Provisioned rows store exactly this digest, so the transform
// must stay deterministic: a per-user salt or a slow KDF would orphan every
// existing credential.
type Hasher struct {
	secret string
}

func NewHasher(secret string) *Hasher {
	return &Hasher{secret: secret}
}

func (h *Hasher) Hash(password string) string {
	sum := sha256.Sum256([]byte(password + h.secret))
	return hex.EncodeToString(sum[:])
}
