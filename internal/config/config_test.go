package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestDefaultConfigIsValid(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}

func TestLoadMissingFile(t *testing.T) {
	t.Chdir(t.TempDir())
	missing := filepath.Join(t.TempDir(), "nope.yaml")

	cfg, err := Load(missing, false)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	_, err = Load(missing, true)
	assert.Error(t, err)
}

func TestLoadYAMLOverDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	dir := t.TempDir()
	p := writeFile(t, dir, "config.yaml", `
api:
  base_url: https://hr.example.com/api
  timeout: 5s
  retry:
    max_attempts: 5
cache:
  retention: 10m
user:
  id: emp-42
  role: manager
timezone: Asia/Tokyo
`)

	cfg, err := Load(p, true)
	require.NoError(t, err)
	assert.Equal(t, "https://hr.example.com/api", cfg.API.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.API.Timeout)
	assert.Equal(t, 5, cfg.API.Retry.MaxAttempts)
	assert.Equal(t, 2.0, cfg.API.Retry.Multiplier, "unset nested fields keep defaults")
	assert.Equal(t, 10*time.Minute, cfg.Cache.Retention)
	assert.Equal(t, User{ID: "emp-42", Role: RoleManager}, cfg.User)
	assert.True(t, cfg.User.CanManage())

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "Asia/Tokyo", loc.String())
}

func TestLoadInvalidYAML(t *testing.T) {
	p := writeFile(t, t.TempDir(), "config.yaml", "api: [unclosed")
	_, err := Load(p, true)
	assert.Error(t, err)
}

func TestEnvOverridesFile(t *testing.T) {
	t.Chdir(t.TempDir())
	p := writeFile(t, t.TempDir(), "config.yaml", "api:\n  base_url: https://file.example.com\n")

	t.Setenv("COMPETENCY_API_URL", "https://env.example.com")
	t.Setenv("COMPETENCY_API_TIMEOUT", "2s")
	t.Setenv("COMPETENCY_USER_ROLE", "admin")

	cfg, err := Load(p, true)
	require.NoError(t, err)
	assert.Equal(t, "https://env.example.com", cfg.API.BaseURL)
	assert.Equal(t, 2*time.Second, cfg.API.Timeout)
	assert.Equal(t, RoleAdmin, cfg.User.Role)
}

func TestEnvBadDuration(t *testing.T) {
	t.Setenv("COMPETENCY_API_TIMEOUT", "soon")
	cfg := DefaultConfig()
	assert.Error(t, cfg.ApplyEnv())
}

func TestDotEnvDoesNotOverrideEnvironment(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeFile(t, dir, ".env", "COMPETENCY_USER_ID=from-dotenv\nCOMPETENCY_API_TOKEN=secret\n")
	t.Setenv("COMPETENCY_USER_ID", "from-env")
	// Registered so the variable set by .env is removed after the test.
	t.Setenv("COMPETENCY_API_TOKEN", "")
	os.Unsetenv("COMPETENCY_API_TOKEN")

	cfg, err := Load(filepath.Join(dir, "missing.yaml"), false)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.User.ID)
	assert.Equal(t, "secret", cfg.API.Token)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"relative url", func(c *Config) { c.API.BaseURL = "/api" }},
		{"zero timeout", func(c *Config) { c.API.Timeout = 0 }},
		{"no attempts", func(c *Config) { c.API.Retry.MaxAttempts = 0 }},
		{"unknown role", func(c *Config) { c.User.Role = "intern" }},
		{"no concurrency", func(c *Config) { c.Import.Concurrency = 0 }},
		{"bad format", func(c *Config) { c.LogFormat = "xml" }},
		{"bad level", func(c *Config) { c.LogLevel = "loud" }},
		{"bad timezone", func(c *Config) { c.Timezone = "Mars/Olympus" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("COMPETENCY_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	assert.Equal(t, filepath.Join("/xdg", "competency", "config.yaml"), DefaultPath())

	t.Setenv("COMPETENCY_CONFIG", "/etc/competency.yaml")
	assert.Equal(t, "/etc/competency.yaml", DefaultPath())
}
