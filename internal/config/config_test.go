package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
	assert.False(t, cfg.Auth.Enabled())
	assert.False(t, cfg.Retention.Enabled)
	assert.Equal(t, 30, cfg.Retention.KeepDays)
}

func TestLoad_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
server:
  port: "9090"
database:
  driver: postgres
  dsn: "host=db user=app dbname=shopping"
retention:
  enabled: true
  keep_days: 7
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("FS_SERVER_PORT", "7070")
	t.Setenv("FS_AUTH_JWT_SECRET", "s3cret")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "7070", cfg.Server.Port, "env overrides file")
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "host=db user=app dbname=shopping", cfg.Database.DSN)
	assert.True(t, cfg.Auth.Enabled())
	assert.Equal(t, 7, cfg.Retention.KeepDays)
	assert.Equal(t, "0 30 3 * * *", cfg.Retention.Schedule)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"ok", func(c *Config) {}, false},
		{"unknown driver", func(c *Config) { c.Database.Driver = "mysql" }, true},
		{"postgres without dsn", func(c *Config) { c.Database.Driver = "postgres"; c.Database.DSN = "" }, true},
		{"bad schedule", func(c *Config) { c.Retention.Enabled = true; c.Retention.Schedule = "every day" }, true},
		{"zero keep days", func(c *Config) { c.Retention.Enabled = true; c.Retention.KeepDays = 0 }, true},
		{"bad schedule ignored when disabled", func(c *Config) { c.Retention.Schedule = "nope" }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Config{
				Database:  DatabaseConfig{Driver: "sqlite"},
				Retention: RetentionConfig{Schedule: "0 30 3 * * *", KeepDays: 30},
			}
			tt.mutate(c)
			err := c.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
