package sanitize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsCredentialKey(t *testing.T) {
	flagged := []string{
		"apiKey", "api_key", "api-key", "fredApiKey",
		"secret", "clientSecret",
		"password", "userPassword",
		"token", "authToken", "refresh_token",
		"credential", "credentials",
		"auth", "authorization",
		"privateKey", "private_key", "private-key",
		"sessionId", "session_id", "session-id",
		"APIKEY", "Secret", "TOKEN",
	}
	for _, key := range flagged {
		assert.True(t, isCredentialKey(key), key)
	}

	clean := []string{"seriesIds", "startDate", "sortColumn", "temperature"}
	for _, key := range clean {
		assert.False(t, isCredentialKey(key), key)
	}

	// Substring match is deliberately aggressive: "author" contains "auth"
	assert.True(t, isCredentialKey("author"))

	// "token" only counts as a suffix, so maxTokens stays allowlistable
	assert.False(t, isCredentialKey("maxTokens"))
	assert.True(t, isCredentialKey("sessionToken"))
	assert.True(t, isCredentialKey("apiToken"))
}

func TestLooksLikeCredentialLength(t *testing.T) {
	assert.False(t, looksLikeCredential(strings.Repeat("a", 200)))
	assert.True(t, looksLikeCredential(strings.Repeat("a", 201)))

	// Byte length, not rune count: 100 three-byte runes exceed the cap
	assert.True(t, looksLikeCredential(strings.Repeat("あ", 100)))
}

func TestLooksLikeCredentialJWT(t *testing.T) {
	assert.True(t, looksLikeCredential("eyJhbGciOiJIUzI1NiJ9.eyJzdWIiOiIxIn0.sig"))
	// Two segments are enough; an unsigned token is still a token
	assert.True(t, looksLikeCredential("eyJhbGciOiJIUzI1NiJ9.eyJzdWIiOiIxIn0"))

	assert.False(t, looksLikeCredential("eyJ"))
	assert.False(t, looksLikeCredential("eyJhbGciOiJIUzI1NiJ9"))
	assert.False(t, looksLikeCredential("not.a.token"))
	// Prefix-anchored: a JWT embedded mid-string does not match
	assert.False(t, looksLikeCredential("see eyJhbGciOiJIUzI1NiJ9.eyJzdWIiOiIxIn0"))
}
