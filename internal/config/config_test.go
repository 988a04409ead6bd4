package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, time.Second, cfg.LookupDelay)
	assert.False(t, cfg.Telegram.Enabled())
}

func TestLoadFile_SaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	cfg := Default()
	cfg.Addr = ":9090"
	cfg.LookupDelay = 250 * time.Millisecond
	cfg.TermOrder = map[string]int{"First": 1, "Second": 2}
	cfg.Telegram = Telegram{Token: "tok", ChatID: 42}
	require.NoError(t, cfg.Save(path))

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
	assert.True(t, loaded.Telegram.Enabled())
}

func TestLoadFile_PartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte("lookup_delay: 2s\n"), 0o600))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, cfg.LookupDelay)
	assert.Equal(t, ":8080", cfg.Addr)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte("addr: \":7000\"\nlookup_delay: 2s\n"), 0o600))

	t.Setenv("FSS_CONFIG", path)
	t.Setenv("ADDR", ":7001")
	t.Setenv("FSS_LOOKUP_DELAY", "10ms")
	t.Setenv("TG_CHAT_ID", "-100123")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":7001", cfg.Addr)
	assert.Equal(t, 10*time.Millisecond, cfg.LookupDelay)
	assert.Equal(t, int64(-100123), cfg.Telegram.ChatID)
}

func TestLoad_BadEnv(t *testing.T) {
	t.Setenv("FSS_LOOKUP_DELAY", "soon")
	_, err := Load()
	assert.ErrorContains(t, err, "FSS_LOOKUP_DELAY")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"empty addr", func(c *Config) { c.Addr = "" }, "addr is required"},
		{"empty dsn", func(c *Config) { c.DSN = "" }, "dsn is required"},
		{"negative delay", func(c *Config) { c.LookupDelay = -time.Second }, "lookup_delay"},
		{"bad pattern", func(c *Config) { c.AdmissionPattern = "([" }, "admission_pattern"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.ErrorContains(t, cfg.Validate(), tt.wantErr)
		})
	}
}

func TestLocation_Fallback(t *testing.T) {
	cfg := Default()
	cfg.Timezone = "Not/AZone"
	_, offset := time.Now().In(cfg.Location()).Zone()
	assert.Equal(t, 3600, offset)
}
