package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults(t *testing.T) {
	var cfg Config
	ApplyDefaults(&cfg)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.Equal(t, "postgres", cfg.Search.Backend)
	assert.Equal(t, 5, cfg.Search.LawLimit)
	assert.Equal(t, 3, cfg.Search.CaseLimit)
	assert.Equal(t, 10, cfg.Index.TopKeywords)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, []string{"stdout"}, cfg.Log.OutputPaths)
}

func TestApplyDefaultsKeepsExplicitValues(t *testing.T) {
	cfg := Config{}
	cfg.Server.Port = 9000
	cfg.Search.Backend = "opensearch"
	ApplyDefaults(&cfg)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "opensearch", cfg.Search.Backend)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		var cfg Config
		ApplyDefaults(&cfg)
		return &cfg
	}

	t.Run("defaults pass", func(t *testing.T) {
		assert.NoError(t, valid().Validate())
	})

	t.Run("bad server mode", func(t *testing.T) {
		cfg := valid()
		cfg.Server.Mode = "production"
		assert.Error(t, cfg.Validate())
	})

	t.Run("bad search backend", func(t *testing.T) {
		cfg := valid()
		cfg.Search.Backend = "elastic"
		assert.Error(t, cfg.Validate())
	})

	t.Run("opensearch backend requires addresses", func(t *testing.T) {
		cfg := valid()
		cfg.Search.Backend = "opensearch"
		cfg.OpenSearch.Addresses = nil
		assert.Error(t, cfg.Validate())

		cfg.OpenSearch.Addresses = []string{"https://localhost:9200"}
		assert.NoError(t, cfg.Validate())
	})

	t.Run("bad log level", func(t *testing.T) {
		cfg := valid()
		cfg.Log.Level = "verbose"
		assert.Error(t, cfg.Validate())
	})

	t.Run("zero limits rejected", func(t *testing.T) {
		cfg := valid()
		cfg.Search.LawLimit = 0
		assert.Error(t, cfg.Validate())
	})
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	body := `
server:
  port: 9090
  mode: debug
database:
  host: db.internal
  user: qa
  db_name: legalqa
search:
  backend: postgres
  law_limit: 7
log:
  level: debug
  format: console
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.Mode)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 7, cfg.Search.LawLimit)
	// Unset values fall back to defaults.
	assert.Equal(t, 3, cfg.Search.CaseLimit)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestDatabaseDSN(t *testing.T) {
	d := DatabaseConfig{
		Host: "localhost", Port: 5432,
		User: "legalai", Password: "secret",
		DBName: "legalai", SSLMode: "disable",
	}
	assert.Equal(t,
		"host=localhost port=5432 user=legalai password=secret dbname=legalai sslmode=disable",
		d.DSN())
}
