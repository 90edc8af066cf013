package jwt

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/transportconnect/transportconnect/internal/pkg/models"
)

func getTestConfig() *models.Config {
	return &models.Config{
		JWT: models.JWTConfig{
			Secret:     "test-secret-key-for-jwt-signing",
			Expiration: 60, // 60 minutes
			Issuer:     "transportconnect-test",
		},
	}
}

func TestGenerateToken(t *testing.T) {
	tests := []struct {
		name  string
		email string
		role  string
	}{
		{name: "driver token", email: "driver@example.com", role: "conducteur"},
		{name: "sender token", email: "sender@example.com", role: "expediteur"},
		{name: "admin token", email: "admin@example.com", role: "admin"},
		{name: "empty role still signs", email: "x@example.com", role: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := getTestConfig()
			token, expiresAt, err := GenerateToken(uuid.New(), tt.email, tt.role, cfg)

			require.NoError(t, err)
			assert.NotEmpty(t, token)
			assert.Greater(t, expiresAt, int64(0))
		})
	}
}

func TestValidateToken(t *testing.T) {
	cfg := getTestConfig()
	userID := uuid.New()

	token, _, err := GenerateToken(userID, "user@example.com", "conducteur", cfg)
	require.NoError(t, err)

	claims, err := ValidateToken(token, cfg.JWT.Secret)
	require.NoError(t, err)

	assert.Equal(t, userID.String(), (*claims)["user_id"])
	assert.Equal(t, "user@example.com", (*claims)["email"])
	assert.Equal(t, "conducteur", (*claims)["role"])
	assert.Equal(t, cfg.JWT.Issuer, (*claims)["iss"])
}

func TestValidateToken_WrongSecret(t *testing.T) {
	cfg := getTestConfig()

	token, _, err := GenerateToken(uuid.New(), "user@example.com", "expediteur", cfg)
	require.NoError(t, err)

	_, err = ValidateToken(token, "another-secret")
	assert.Error(t, err)
}

func TestValidateToken_Garbage(t *testing.T) {
	_, err := ValidateToken("not-a-token", "secret")
	assert.Error(t, err)
}
