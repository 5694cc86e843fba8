package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, 100, cfg.MaxResults)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
addr: ":9090"
words_path: /data/words.txt
max_results: 25
allowed_origins:
  - https://example.com
log:
  level: debug
  format: json
scan:
  workers: 4
  chunk_size: 2048
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "/data/words.txt", cfg.WordsPath)
	assert.Equal(t, 25, cfg.MaxResults)
	assert.Equal(t, []string{"https://example.com"}, cfg.AllowedOrigins)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, Scan{Workers: 4, ChunkSize: 2048}, cfg.Scan)
}

func TestLoad_FileErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_results: [1, 2"), 0644))
	_, err = Load(path)
	assert.Error(t, err)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("WORDS_PATH", "/env/words.txt")
	t.Setenv("MAX_RESULTS", "7")
	t.Setenv("ALLOWED_ORIGINS", "https://a.test, https://b.test,")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "/env/words.txt", cfg.WordsPath)
	assert.Equal(t, 7, cfg.MaxResults)
	assert.Equal(t, []string{"https://a.test", "https://b.test"}, cfg.AllowedOrigins)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_EnvInvalidNumber(t *testing.T) {
	t.Setenv("MAX_RESULTS", "lots")

	_, err := Load("")
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{name: "empty addr", mutate: func(c *Config) { c.Addr = "" }, errMsg: "addr"},
		{name: "empty words path", mutate: func(c *Config) { c.WordsPath = "" }, errMsg: "words_path"},
		{name: "zero max results", mutate: func(c *Config) { c.MaxResults = 0 }, errMsg: "max_results"},
		{name: "bad level", mutate: func(c *Config) { c.Log.Level = "chatty" }, errMsg: "log level"},
		{name: "bad format", mutate: func(c *Config) { c.Log.Format = "xml" }, errMsg: "log.format"},
		{name: "negative workers", mutate: func(c *Config) { c.Scan.Workers = -1 }, errMsg: "scan.workers"},
		{name: "negative chunk size", mutate: func(c *Config) { c.Scan.ChunkSize = -1 }, errMsg: "scan.chunk_size"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}
