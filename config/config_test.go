package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.NotNil(t, cfg)
	assert.Equal(t, "USD", cfg.Account.Currency)
	assert.Equal(t, 10000.0, cfg.Account.Size)
	assert.Equal(t, 1.0, cfg.Account.RiskPercent)
	assert.Equal(t, 2.0, cfg.Risk.MaxRiskPercent)
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"valid config", func(*Config) {}, ""},
		{"missing currency", func(c *Config) { c.Account.Currency = "" }, "account.currency is required"},
		{"negative size", func(c *Config) { c.Account.Size = -1 }, "account.size must not be negative"},
		{"risk over 100", func(c *Config) { c.Account.RiskPercent = 150 }, "account.risk_percent must be between 0 and 100"},
		{"bad max risk", func(c *Config) { c.Risk.MaxRiskPercent = -1 }, "risk.max_risk_percent"},
		{"bad min rr", func(c *Config) { c.Risk.MinRR = -1 }, "risk.min_rr must not be negative"},
		{"missing db", func(c *Config) { c.Journal.DBPath = "" }, "journal.db_path is required"},
		{"missing addr", func(c *Config) { c.Server.Addr = "" }, "server.addr is required"},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, "log.level"},
		{"bad format", func(c *Config) { c.Log.Format = "xml" }, "log.format must be 'console' or 'json'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestSaveAndLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tradelog.yaml")

	cfg := Default()
	cfg.Account.Size = 25000
	cfg.Account.RiskPercent = 0.5
	cfg.Server.ShutdownTimeout = 3 * time.Second
	require.NoError(t, cfg.SaveToFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "risk_percent: 0.5")

	loaded, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestSaveAndLoadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tradelog.json")

	cfg := Default()
	cfg.Journal.DBPath = "/tmp/journal.sqlite"
	require.NoError(t, cfg.SaveToFile(path))

	loaded, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/journal.sqlite", loaded.Journal.DBPath)
}

func TestLoadWithoutFileUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("TRADELOG_JOURNAL_DB_PATH", "/data/env.sqlite")
	t.Setenv("TRADELOG_ACCOUNT_SIZE", "5000")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "/data/env.sqlite", cfg.Journal.DBPath)
	assert.Equal(t, 5000.0, cfg.Account.Size)
}

func TestLoadFromFileMissing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config file")
}

func TestLoadInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  format: xml\n"), 0644))

	_, err := LoadFromFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}
