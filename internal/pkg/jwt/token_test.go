package jwt

import (
	"testing"
	"time"

	"github.com/gavraq/lifetrack/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *models.Config {
	return &models.Config{
		JWT: models.JWTConfig{
			Secret:     "test-secret",
			Expiration: 60,
			Issuer:     "lifetrack-test",
		},
	}
}

func TestGenerateToken(t *testing.T) {
	cfg := testConfig()

	token, expiresAt, err := GenerateToken("gavraq", "operator", cfg)
	require.NoError(t, err)

	assert.NotEmpty(t, token)
	assert.Greater(t, expiresAt, time.Now().Unix())
}

func TestValidateToken(t *testing.T) {
	cfg := testConfig()

	token, _, err := GenerateToken("gavraq", "operator", cfg)
	require.NoError(t, err)

	claims, err := ValidateToken(token, cfg.JWT.Secret)
	require.NoError(t, err)

	assert.Equal(t, "gavraq", (*claims)["user_id"])
	assert.Equal(t, "operator", (*claims)["role"])
	assert.Equal(t, "lifetrack-test", (*claims)["iss"])
}

func TestValidateToken_WrongSecret(t *testing.T) {
	cfg := testConfig()

	token, _, err := GenerateToken("gavraq", "operator", cfg)
	require.NoError(t, err)

	_, err = ValidateToken(token, "other-secret")
	assert.Error(t, err)
}

func TestValidateToken_Garbage(t *testing.T) {
	_, err := ValidateToken("not.a.token", "test-secret")
	assert.Error(t, err)
}
