package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewService(t *testing.T) {
	secretKey := "test-secret-key"
	service := NewService(secretKey, time.Hour)

	assert.NotNil(t, service)
	assert.Equal(t, []byte(secretKey), service.secretKey)
}

func TestGenerateToken(t *testing.T) {
	service := NewService("test-secret-key", time.Hour)

	token, err := service.GenerateToken("user-123", "Alice", "consumer", "")

	assert.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestValidateToken(t *testing.T) {
	service := NewService("test-secret-key", time.Hour)

	token, err := service.GenerateToken("user-123", "Alice", "consumer", "https://example.com/a.png")
	assert.NoError(t, err)

	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "Alice", claims.Name)
	assert.Equal(t, "consumer", claims.Role)
	assert.Equal(t, "https://example.com/a.png", claims.Avatar)
}

func TestValidateToken_InvalidToken(t *testing.T) {
	service := NewService("test-secret-key", time.Hour)

	_, err := service.ValidateToken("invalid-token")
	assert.Error(t, err)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	service1 := NewService("secret-key-1", time.Hour)
	service2 := NewService("secret-key-2", time.Hour)

	token, err := service1.GenerateToken("user-123", "Alice", "consumer", "")
	assert.NoError(t, err)

	// Try to validate with service2 (wrong secret)
	_, err = service2.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_ExpiredToken(t *testing.T) {
	service := NewService("test-secret-key", -time.Minute)

	token, err := service.GenerateToken("user-123", "Alice", "consumer", "")
	assert.NoError(t, err)

	_, err = service.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_EmptyToken(t *testing.T) {
	service := NewService("test-secret-key", time.Hour)

	_, err := service.ValidateToken("")
	assert.Error(t, err)
}

func TestGenerateAndValidateToken_RoundTrip(t *testing.T) {
	service := NewService("test-secret-key", time.Hour)

	token, err := service.GenerateToken("user-456", "Bob", "creator", "")
	assert.NoError(t, err)

	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-456", claims.UserID)
	assert.Equal(t, "creator", claims.Role)
	assert.True(t, time.Now().Before(claims.ExpiresAt.Time))
}
