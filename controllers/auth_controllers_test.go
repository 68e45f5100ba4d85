package controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGoogleUserFromClaims(t *testing.T) {
	user, err := googleUserFromClaims(map[string]interface{}{
		"name":           "Alice",
		"email":          "alice@example.com",
		"email_verified": true,
		"picture":        "https://example.com/a.png",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Alice", user.Name)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.True(t, user.VerifiedEmail)
	assert.Equal(t, "https://example.com/a.png", user.Picture)
}

func TestGoogleUserFromClaimsMissingProfile(t *testing.T) {
	// Tokens without profile scope carry no name or picture; the email
	// stands in for the display name.
	user, err := googleUserFromClaims(map[string]interface{}{
		"email":          "alice@example.com",
		"email_verified": true,
	})

	assert.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Name)
	assert.Empty(t, user.Picture)
	assert.True(t, user.VerifiedEmail)
}

func TestGoogleUserFromClaimsRequiresEmail(t *testing.T) {
	_, err := googleUserFromClaims(map[string]interface{}{
		"name": "Alice",
	})
	assert.Error(t, err)

	_, err = googleUserFromClaims(map[string]interface{}{
		"email": 42,
	})
	assert.Error(t, err)
}
