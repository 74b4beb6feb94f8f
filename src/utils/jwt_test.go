package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateAndParseJWT(t *testing.T) {
	token, err := GenerateJWT("user-123", "admin")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := ParseJWT(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "admin", claims.Role)
}

func TestTokenHasNoExpiry(t *testing.T) {
	token, err := GenerateJWT("user-123", "user")
	assert.NoError(t, err)

	claims, err := ParseJWT(token)
	assert.NoError(t, err)
	assert.Nil(t, claims.ExpiresAt)
}

func TestParseJWTRejectsEmptyToken(t *testing.T) {
	_, err := ParseJWT("")
	assert.Error(t, err)
}

func TestParseJWTRejectsGarbage(t *testing.T) {
	_, err := ParseJWT("not.a.token")
	assert.Error(t, err)
}

func TestParseJWTRejectsTamperedToken(t *testing.T) {
	token, err := GenerateJWT("user-123", "user")
	assert.NoError(t, err)
	other, err := GenerateJWT("user-456", "admin")
	assert.NoError(t, err)

	// Claims of one token with the signature of another.
	tampered := strings.Join([]string{
		strings.Split(other, ".")[0],
		strings.Split(other, ".")[1],
		strings.Split(token, ".")[2],
	}, ".")

	_, err = ParseJWT(tampered)
	assert.Error(t, err)
}
