package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccessToken_RoundTrip(t *testing.T) {
	mgr := NewManager("unit-test-secret-key-0123456789abcdef", 15, 1440)

	token, err := mgr.GenerateAccessToken(2, "analyst@dealflow.dev", "analyst")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := mgr.VerifyToken(token)
	assert.NoError(t, err)
	assert.Equal(t, uint(2), claims.UserID)
	assert.Equal(t, "analyst@dealflow.dev", claims.Email)
	assert.Equal(t, "analyst", claims.Role)
	assert.Equal(t, "analyst@dealflow.dev", claims.Subject)
}

func TestRefreshToken_CarriesNoRole(t *testing.T) {
	mgr := NewManager("unit-test-secret-key-0123456789abcdef", 15, 1440)

	token, err := mgr.GenerateRefreshToken(2, "analyst@dealflow.dev")
	assert.NoError(t, err)

	claims, err := mgr.VerifyToken(token)
	assert.NoError(t, err)
	assert.Equal(t, uint(2), claims.UserID)
	assert.Empty(t, claims.Role)
}

func TestVerifyToken_Expired(t *testing.T) {
	mgr := NewManager("unit-test-secret-key-0123456789abcdef", -1, 1440)

	token, err := mgr.GenerateAccessToken(2, "analyst@dealflow.dev", "analyst")
	assert.NoError(t, err)

	_, err = mgr.VerifyToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	issuer := NewManager("unit-test-secret-key-0123456789abcdef", 15, 1440)
	verifier := NewManager("a-completely-different-secret-key!!!", 15, 1440)

	token, err := issuer.GenerateAccessToken(2, "analyst@dealflow.dev", "analyst")
	assert.NoError(t, err)

	_, err = verifier.VerifyToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyToken_Garbage(t *testing.T) {
	mgr := NewManager("unit-test-secret-key-0123456789abcdef", 15, 1440)

	_, err := mgr.VerifyToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
