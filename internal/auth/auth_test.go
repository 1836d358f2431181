package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barberia-elite/booking-api/internal/config"
)

func testService(t *testing.T, secret string) *Service {
	t.Helper()

	svc, err := NewService(&config.Config{
		JWTSecret:     secret,
		AdminUsername: "admin",
		AdminPassword: "Admin123!",
	})
	require.NoError(t, err)
	return svc
}

func TestAuthenticateAndVerify(t *testing.T) {
	svc := testService(t, "test-secret")

	token, err := svc.Authenticate("admin", "Admin123!")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.VerifyAdmin(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
}

func TestAuthenticateRejectsBadCredentials(t *testing.T) {
	svc := testService(t, "test-secret")

	_, err := svc.Authenticate("admin", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate("root", "Admin123!")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestVerifyAdminRejectsGarbage(t *testing.T) {
	svc := testService(t, "test-secret")

	_, err := svc.VerifyAdmin("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.VerifyAdmin("")
	assert.Error(t, err)
}

func TestVerifyAdminRejectsForeignSecret(t *testing.T) {
	issuer := testService(t, "secret-a")
	verifier := testService(t, "secret-b")

	token, err := issuer.Authenticate("admin", "Admin123!")
	require.NoError(t, err)

	_, err = verifier.VerifyAdmin(token)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
