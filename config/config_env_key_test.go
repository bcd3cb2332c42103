package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"secretKey": map[string]any{
			"access": "",
		},
		"auth": map[string]any{
			"tokenTTL": "30m",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "AUTH_TOKENTTL", want: "auth.tokenTTL"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestLoadWithEnv_EnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	yamlBody := `
http:
  port: 9000
storage:
  driver: memory
secretKey:
  access: ""
auth:
  bcryptCost: 4
  tokenTTL: 30m
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yamlBody), 0o600))
	t.Chdir(dir)
	t.Setenv("SECRETKEY_ACCESS", "from-env")
	t.Setenv("AUTH_TOKENTTL", "45m")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.HTTP.Port)
	assert.Equal(t, "from-env", cfg.SecretKey.Access)
	require.NotNil(t, cfg.Auth)
	assert.Equal(t, 45*time.Minute, cfg.Auth.TokenTTL)
	assert.Equal(t, 4, cfg.Auth.BcryptCost)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("config")
	assert.ErrorContains(t, err, "config file config.yaml not found")
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.Storage.Driver = "Memory"

	require.NoError(t, cfg.applyDefaults())
	assert.Equal(t, StorageDriverMemory, cfg.Storage.Driver)
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, defaultPort, cfg.HTTP.Port)
	assert.Equal(t, 30*time.Minute, cfg.Auth.TokenTTL)
	assert.Equal(t, bcrypt.DefaultCost, cfg.Auth.BcryptCost)
}

func TestApplyDefaults_Rejects(t *testing.T) {
	t.Run("unknown driver", func(t *testing.T) {
		cfg := &Config{}
		cfg.Storage.Driver = "mongo"
		assert.ErrorContains(t, cfg.applyDefaults(), "unknown storage driver")
	})

	t.Run("postgres without connection", func(t *testing.T) {
		cfg := &Config{}
		assert.ErrorContains(t, cfg.applyDefaults(), "postgres configuration is required")
	})

	t.Run("bcrypt cost out of range", func(t *testing.T) {
		cfg := &Config{Auth: &AuthConfig{BcryptCost: 99}}
		cfg.Storage.Driver = StorageDriverMemory
		assert.ErrorContains(t, cfg.applyDefaults(), "bcrypt cost 99 out of range")
	})
}
