package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	t.Setenv("SESSION_SECRET", "test-secret")

	token, err := SignSessionToken("stylist@example.com")
	require.NoError(t, err)

	email, err := VerifySessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, "stylist@example.com", email)
}

func TestSessionTokenTampered(t *testing.T) {
	t.Setenv("SESSION_SECRET", "test-secret")

	token, err := SignSessionToken("stylist@example.com")
	require.NoError(t, err)

	_, err = VerifySessionToken(token + "x")
	assert.Error(t, err)
}

func TestSessionTokenWrongSecret(t *testing.T) {
	t.Setenv("SESSION_SECRET", "test-secret")
	token, err := SignSessionToken("stylist@example.com")
	require.NoError(t, err)

	t.Setenv("SESSION_SECRET", "other-secret")
	_, err = VerifySessionToken(token)
	assert.Error(t, err)
}

func TestSignSessionTokenRequiresSecret(t *testing.T) {
	t.Setenv("SESSION_SECRET", "")

	_, err := SignSessionToken("stylist@example.com")
	assert.Error(t, err)
}

func TestSessionTokenRejectsPlainEmail(t *testing.T) {
	t.Setenv("SESSION_SECRET", "test-secret")

	// A raw email in the cookie must not pass as a session.
	_, err := VerifySessionToken("stylist@example.com")
	assert.Error(t, err)
}
