package auth

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/windseal/windseal-cms/internal/db/models"
)

func setupTestService(t *testing.T) *Service {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to create test database")

	err = db.AutoMigrate(&models.AdminCredential{})
	require.NoError(t, err, "failed to migrate test database")

	svc, err := NewService(db, "changeme")
	require.NoError(t, err)

	return svc
}

func TestNewServiceNilDB(t *testing.T) {
	_, err := NewService(nil, "changeme")
	assert.ErrorIs(t, err, ErrDBNil)
}

func TestVerify(t *testing.T) {
	svc := setupTestService(t)

	assert.NoError(t, svc.Verify("changeme"))
	assert.ErrorIs(t, svc.Verify("wrong"), ErrSecretMismatch)
	assert.ErrorIs(t, svc.Verify(""), ErrSecretMismatch)
}

func TestSeedOnlyOnFirstBoot(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.AdminCredential{}))

	svc, err := NewService(db, "first")
	require.NoError(t, err)
	require.NoError(t, svc.ChangeSecret("first", "rotated", "rotated"))

	// A second startup with a different default must not clobber the
	// rotated secret.
	svc, err = NewService(db, "second")
	require.NoError(t, err)

	assert.NoError(t, svc.Verify("rotated"))
	assert.ErrorIs(t, svc.Verify("second"), ErrSecretMismatch)
}

func TestChangeSecret(t *testing.T) {
	testCases := []struct {
		name    string
		current string
		next    string
		confirm string
		wantErr error
	}{
		{name: "wrong current", current: "nope", next: "newpass", confirm: "newpass", wantErr: ErrCurrentMismatch},
		{name: "confirmation mismatch", current: "changeme", next: "newpass", confirm: "other", wantErr: ErrConfirmationMismatch},
		{name: "too short", current: "changeme", next: "abc", confirm: "abc", wantErr: ErrSecretTooShort},
		{name: "valid", current: "changeme", next: "newpass", confirm: "newpass", wantErr: nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := setupTestService(t)

			err := svc.ChangeSecret(tc.current, tc.next, tc.confirm)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.NoError(t, svc.Verify("changeme"), "secret changed despite validation error")
				return
			}

			require.NoError(t, err)
			assert.NoError(t, svc.Verify("newpass"))
			assert.ErrorIs(t, svc.Verify("changeme"), ErrSecretMismatch)
		})
	}
}

func TestChangeSecretValidationOrder(t *testing.T) {
	svc := setupTestService(t)

	// Wrong current wins over confirmation mismatch.
	err := svc.ChangeSecret("nope", "newpass", "other")
	assert.ErrorIs(t, err, ErrCurrentMismatch)
}
