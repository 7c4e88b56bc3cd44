package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Radithya02/Catering-Food/configs"
)

func testConfig() configs.Config {
	var cfg configs.Config
	cfg.Security.JWTSecret = "test-secret"
	cfg.Security.Issuer = "catering-api"
	cfg.Security.Audience = "catering-clients"
	cfg.Security.TTL = 5 * time.Minute
	return cfg
}

func TestIssueAndParseToken(t *testing.T) {
	cfg := testConfig()

	raw, expires, err := IssueToken(cfg, "alice")
	require.NoError(t, err)
	assert.NotEmpty(t, raw)
	assert.WithinDuration(t, time.Now().Add(5*time.Minute), expires, 5*time.Second)

	sub, err := ParseToken(cfg, raw)
	require.NoError(t, err)
	assert.Equal(t, "alice", sub)
}

func TestParseTokenRejectsBadSecret(t *testing.T) {
	cfg := testConfig()
	raw, _, err := IssueToken(cfg, "alice")
	require.NoError(t, err)

	other := testConfig()
	other.Security.JWTSecret = "different"
	_, err = ParseToken(other, raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTokenRejectsWrongAudience(t *testing.T) {
	cfg := testConfig()
	raw, _, err := IssueToken(cfg, "alice")
	require.NoError(t, err)

	other := testConfig()
	other.Security.Audience = "someone-else"
	_, err = ParseToken(other, raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	_, err := ParseToken(testConfig(), "not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
