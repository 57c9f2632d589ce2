package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Success loading from env", func(t *testing.T) {
		// t.Setenv sets the environment variable for the duration of the test
		// and automatically restores it afterwards.
		t.Setenv("DB_HOST", "localhost")
		t.Setenv("DB_USER", "testuser")
		t.Setenv("DB_PASSWORD", "testpass")
		t.Setenv("DB_NAME", "testdb")
		t.Setenv("DB_PORT", "5432")
		t.Setenv("APP_PORT", "8080")
		t.Setenv("APP_ENV", "test")
		t.Setenv("PAYSTACK_API_BASE_URL", "https://api.paystack.co")
		t.Setenv("PAYSTACK_SECRET_KEY", "sk_test_secret")
		t.Setenv("USE_MOCK_GATEWAY", "")

		cfg := LoadConfig()

		assert.NotNil(t, cfg)
		assert.Equal(t, "localhost", cfg.DBHost)
		assert.Equal(t, "testuser", cfg.DBUser)
		assert.Equal(t, "testpass", cfg.DBPassword)
		assert.Equal(t, "testdb", cfg.DBName)
		assert.Equal(t, "5432", cfg.DBPort)
		assert.Equal(t, "8080", cfg.AppPort)
		assert.Equal(t, "test", cfg.AppEnv)
		assert.Equal(t, "https://api.paystack.co", cfg.PaystackBaseURL)
		assert.Equal(t, "sk_test_secret", cfg.PaystackSecretKey)
		assert.False(t, cfg.UseMockGateway)
	})

	t.Run("Defaults", func(t *testing.T) {
		t.Setenv("PAYSTACK_SECRET_KEY", "sk_test_secret")
		t.Setenv("PAYSTACK_API_BASE_URL", "")
		t.Setenv("APP_PORT", "")

		cfg := LoadConfig()

		assert.Equal(t, "https://api.paystack.co", cfg.PaystackBaseURL)
		assert.Equal(t, "8000", cfg.AppPort)
	})

	t.Run("Mock gateway toggle", func(t *testing.T) {
		t.Setenv("PAYSTACK_SECRET_KEY", "")
		t.Setenv("USE_MOCK_GATEWAY", "true")

		cfg := LoadConfig()

		assert.True(t, cfg.UseMockGateway)
	})
}
