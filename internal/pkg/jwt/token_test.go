package jwt

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alumnet/backend/internal/pkg/models"
)

func getTestConfig() models.JWTConfig {
	return models.JWTConfig{
		Secret:        "test-secret-key-for-jwt-signing",
		Issuer:        "alumnet-test",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: 168 * time.Hour,
	}
}

func testUser() *models.User {
	return &models.User{
		ID:     uuid.New(),
		MSISDN: "+6281234567890",
		Role:   models.RoleUser,
	}
}

func TestGeneratePair(t *testing.T) {
	// Arrange
	cfg := getTestConfig()
	user := testUser()

	// Act
	pair, err := GeneratePair(user, cfg)

	// Assert
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)
	assert.Equal(t, int64(cfg.AccessExpiry.Seconds()), pair.ExpiresIn)
}

func TestValidateToken_RoundTrip(t *testing.T) {
	cfg := getTestConfig()
	user := testUser()

	pair, err := GeneratePair(user, cfg)
	require.NoError(t, err)

	claims, err := ValidateToken(pair.AccessToken, TokenTypeAccess, cfg)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.MSISDN, claims.MSISDN)
	assert.Equal(t, models.RoleUser, claims.Role)
	assert.Equal(t, TokenTypeAccess, claims.TokenType)
	assert.Equal(t, cfg.Issuer, claims.Issuer)
}

func TestValidateToken_TypeMismatch(t *testing.T) {
	cfg := getTestConfig()
	user := testUser()

	pair, err := GeneratePair(user, cfg)
	require.NoError(t, err)

	// An access token must not pass where a refresh token is expected
	_, err = ValidateToken(pair.AccessToken, TokenTypeRefresh, cfg)
	assert.Error(t, err)

	// And vice versa
	_, err = ValidateToken(pair.RefreshToken, TokenTypeAccess, cfg)
	assert.Error(t, err)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	cfg := getTestConfig()
	user := testUser()

	pair, err := GeneratePair(user, cfg)
	require.NoError(t, err)

	badCfg := cfg
	badCfg.Secret = "a-completely-different-secret"

	_, err = ValidateToken(pair.AccessToken, TokenTypeAccess, badCfg)
	assert.Error(t, err)
}

func TestValidateToken_Expired(t *testing.T) {
	cfg := getTestConfig()
	cfg.AccessExpiry = -1 * time.Minute
	user := testUser()

	pair, err := GeneratePair(user, cfg)
	require.NoError(t, err)

	_, err = ValidateToken(pair.AccessToken, TokenTypeAccess, getTestConfig())
	assert.Error(t, err)
}

func TestValidateToken_Malformed(t *testing.T) {
	cfg := getTestConfig()

	_, err := ValidateToken("not-a-token", TokenTypeAccess, cfg)
	assert.Error(t, err)

	_, err = ValidateToken("", TokenTypeAccess, cfg)
	assert.Error(t, err)
}
