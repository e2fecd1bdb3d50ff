package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `{"port": 8080, "database_url": "postgres://localhost/test", "verbose": true}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "postgres://localhost/test", cfg.DatabaseURL)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	_, err = LoadConfig(writeConfig(t, `{not json`))
	assert.Error(t, err)
}

func TestFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_URL", "postgres://localhost/env")
	t.Setenv("RATELIMIT_RPS", "5")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "postgres://localhost/env", cfg.DatabaseURL)
	assert.Equal(t, 5, cfg.RateLimitRPS)
}

func TestFromEnv_InvalidInt(t *testing.T) {
	t.Setenv("PORT", "not-a-number")

	_, err := FromEnv()
	assert.Error(t, err)
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()

	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, DefaultRateLimitRPS, cfg.RateLimitRPS)
	assert.Equal(t, DefaultRateBurst, cfg.RateBurst)
	assert.Equal(t, int64(DefaultMaxUploadBytes), cfg.MaxUploadBytes)
	assert.Equal(t, DefaultHistoryLimit, cfg.HistoryLimit)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{Port: 8080, HistoryLimit: 25}
	cfg.ApplyDefaults()

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 25, cfg.HistoryLimit)
}

func TestValidate(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()
	assert.NoError(t, cfg.Validate())

	assert.Error(t, (&Config{Port: -1}).Validate())
	assert.Error(t, (&Config{Port: 70000}).Validate())
	assert.Error(t, (&Config{RateLimitRPS: -1}).Validate())
	assert.Error(t, (&Config{HistoryLimit: -1}).Validate())
}

func TestNewJWTConfig(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_EXPIRATION_HOURS", "48")

	cfg, err := NewJWTConfig()
	require.NoError(t, err)
	assert.Equal(t, "test-secret", cfg.Secret)
	assert.Equal(t, 48, cfg.ExpirationHours)
	assert.Equal(t, "resume-analyzer", cfg.Issuer)
}

func TestNewJWTConfig_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := NewJWTConfig()
	assert.Error(t, err)
}

func TestNewJWTConfig_InvalidExpiration(t *testing.T) {
	t.Setenv("JWT_SECRET", "s")

	t.Setenv("JWT_EXPIRATION_HOURS", "abc")
	_, err := NewJWTConfig()
	assert.Error(t, err)

	t.Setenv("JWT_EXPIRATION_HOURS", "0")
	_, err = NewJWTConfig()
	assert.Error(t, err)
}

func TestPasswordConfig_HashAndVerify(t *testing.T) {
	t.Setenv("BCRYPT_COST", "10")

	cfg, err := NewPasswordConfig()
	require.NoError(t, err)

	hash, err := cfg.HashPassword("hunter22")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter22", hash)

	assert.True(t, cfg.VerifyPassword("hunter22", hash))
	assert.False(t, cfg.VerifyPassword("wrong", hash))
}

func TestPasswordConfig_CostRange(t *testing.T) {
	t.Setenv("BCRYPT_COST", "9")
	_, err := NewPasswordConfig()
	assert.Error(t, err)

	t.Setenv("BCRYPT_COST", "15")
	_, err = NewPasswordConfig()
	assert.Error(t, err)
}
