package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAuth() *Auth {
	return New(Config{
		Username:           "admin",
		Password:           "correct-horse-battery-staple",
		JWTSecret:          "a-sufficiently-long-test-secret-value",
		TokenTTL:           time.Hour,
		MaxLoginAttempts:   3,
		LoginWindowSeconds: 60,
	})
}

func TestAuthenticateSuccess(t *testing.T) {
	a := testAuth()
	token, err := a.Authenticate("admin", "correct-horse-battery-staple", "1.2.3.4:5555")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := a.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Sub)
}

func TestAuthenticateWrongPassword(t *testing.T) {
	a := testAuth()
	_, err := a.Authenticate("admin", "wrong-password", "1.2.3.4:5555")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticateWrongUsername(t *testing.T) {
	a := testAuth()
	_, err := a.Authenticate("someone-else", "correct-horse-battery-staple", "1.2.3.4:5555")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticateRateLimitsAfterRepeatedFailures(t *testing.T) {
	a := testAuth()
	remote := "9.9.9.9:1111"
	for i := 0; i < 3; i++ {
		_, err := a.Authenticate("admin", "wrong", remote)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	}

	_, err := a.Authenticate("admin", "correct-horse-battery-staple", remote)
	assert.ErrorIs(t, err, ErrRateLimited)
	assert.Greater(t, a.RemainingLockout(remote), time.Duration(0))
}

func TestAuthenticateSuccessResetsFailureCount(t *testing.T) {
	a := testAuth()
	remote := "5.5.5.5:2222"
	_, err := a.Authenticate("admin", "wrong", remote)
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = a.Authenticate("admin", "correct-horse-battery-staple", remote)
	require.NoError(t, err)

	// Failure count should have reset; two more failures must not yet
	// trip the 3-attempt limit.
	_, err = a.Authenticate("admin", "wrong", remote)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = a.Authenticate("admin", "wrong", remote)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = a.Authenticate("admin", "correct-horse-battery-staple", remote)
	assert.NoError(t, err)
}

func TestValidateTokenRejectsTamperedSignature(t *testing.T) {
	a := testAuth()
	token, err := a.CreateToken("admin")
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = a.ValidateToken(tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	a := New(Config{
		Username:  "admin",
		Password:  "pw",
		JWTSecret: "a-sufficiently-long-test-secret-value",
		TokenTTL:  -time.Hour,
	})
	token, err := a.CreateToken("admin")
	require.NoError(t, err)

	_, err = a.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateTokenRejectsMalformed(t *testing.T) {
	a := testAuth()
	_, err := a.ValidateToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	a := testAuth()
	token, err := a.CreateToken("admin")
	require.NoError(t, err)

	other := New(Config{
		Username:  "admin",
		Password:  "pw",
		JWTSecret: "a-totally-different-test-secret-value",
		TokenTTL:  time.Hour,
	})
	_, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
