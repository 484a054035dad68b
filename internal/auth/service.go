// Package auth manages the single shared back office secret.
//
// There are no user accounts. One secret gates the whole admin area; it is
// stored as an Argon2id hash in its own table and can be rotated from the
// settings page.
package auth

import (
	"errors"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/windseal/windseal-cms/internal/db/models"
)

// MinSecretLength is the minimum length for a new admin secret.
const MinSecretLength = 4

// Service verifies and rotates the admin secret.
type Service struct {
	db *gorm.DB
}

// NewService ensures a credential row exists, seeding it with the hash of
// defaultSecret on first boot, and returns the service.
func NewService(db *gorm.DB, defaultSecret string) (*Service, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var cred models.AdminCredential

	err := db.First(&cred).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		cred = models.AdminCredential{SecretHash: models.HashSecret(defaultSecret)}

		if err := db.Create(&cred).Error; err != nil {
			return nil, err
		}

		log.Info().Msg("seeded admin credential with default secret")

		return &Service{db: db}, nil
	}
	if err != nil {
		return nil, err
	}

	return &Service{db: db}, nil
}

// Verify checks a submitted secret against the stored hash.
func (s *Service) Verify(secret string) error {
	var cred models.AdminCredential

	if err := s.db.First(&cred).Error; err != nil {
		return err
	}

	if !cred.VerifySecret(secret) {
		return ErrSecretMismatch
	}

	return nil
}

// ChangeSecret rotates the admin secret. The current secret must match, the
// new secret and its confirmation must agree, and the new secret must meet
// the minimum length. Subsequent logins only accept the new secret.
func (s *Service) ChangeSecret(current, next, confirm string) error {
	var cred models.AdminCredential

	if err := s.db.First(&cred).Error; err != nil {
		return err
	}

	if !cred.VerifySecret(current) {
		return ErrCurrentMismatch
	}

	if next != confirm {
		return ErrConfirmationMismatch
	}

	if len(next) < MinSecretLength {
		return ErrSecretTooShort
	}

	cred.SecretHash = models.HashSecret(next)

	return s.db.Save(&cred).Error
}
