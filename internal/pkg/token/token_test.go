package token

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndParse(t *testing.T) {
	now := time.Now()

	signed, claims, err := Issue(42, "Sara", "sara@example.com", "admin", now)
	require.NoError(t, err)
	require.NotEmpty(t, signed)
	require.NotEmpty(t, claims.ID)

	parsed, err := Parse(signed)
	require.NoError(t, err)

	assert.Equal(t, uint(42), parsed.UserID)
	assert.Equal(t, "Sara", parsed.Name)
	assert.Equal(t, "sara@example.com", parsed.Email)
	assert.Equal(t, "admin", parsed.Role)
	assert.Equal(t, claims.ID, parsed.ID)
	assert.True(t, parsed.ExpiresAt.After(now))
}

func TestParseRejectsExpiredToken(t *testing.T) {
	signed, _, err := Issue(1, "Old", "old@example.com", "user", time.Now().Add(-48*time.Hour))
	require.NoError(t, err)

	_, err = Parse(signed)
	assert.Error(t, err)
}

func TestParseRejectsTamperedToken(t *testing.T) {
	signed, _, err := Issue(1, "User", "user@example.com", "user", time.Now())
	require.NoError(t, err)

	// Flip a character in the signature segment
	parts := strings.Split(signed, ".")
	require.Len(t, parts, 3)
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	parts[2] = string(sig)

	_, err = Parse(strings.Join(parts, "."))
	assert.Error(t, err)
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := Parse("not-a-jwt")
	assert.Error(t, err)
}

func TestTokensCarryUniqueIDs(t *testing.T) {
	_, a, err := Issue(1, "A", "a@example.com", "user", time.Now())
	require.NoError(t, err)
	_, b, err := Issue(1, "A", "a@example.com", "user", time.Now())
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
}
