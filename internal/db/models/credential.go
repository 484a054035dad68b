package models

import (
	"time"

	"github.com/alexedwards/argon2id"
	"github.com/rs/zerolog/log"
)

// AdminCredential holds the single shared back office secret.
// The secret is stored as an Argon2id hash; verification succeeds iff the
// submitted value matches the most recently set secret.
type AdminCredential struct {
	ID uint64 `gorm:"primaryKey"`
	// SecretHash is the Argon2id hash of the admin secret.
	SecretHash string `gorm:"size:255;not null"`
	// UpdatedAt is the timestamp of the last secret change (managed by GORM).
	UpdatedAt time.Time
}

// HashSecret hashes a plaintext secret using the Argon2id algorithm.
func HashSecret(secret string) string {
	hash, err := argon2id.CreateHash(secret, argon2id.DefaultParams)
	if err != nil {
		log.Fatal().Msgf("failed to hash secret: %v", err)
	}

	return hash
}

// VerifySecret verifies a plaintext secret against the stored hash.
// It uses constant-time comparison to prevent timing attacks.
func (c *AdminCredential) VerifySecret(secret string) bool {
	match, err := argon2id.ComparePasswordAndHash(secret, c.SecretHash)
	if err != nil {
		log.Error().Msgf("failed to verify secret: %v", err)
		return false
	}

	return match
}
