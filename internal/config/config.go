// Package config defines all configuration structures for taiwan-legal-ai.
// No I/O or parsing logic lives here, only plain data types and validation.
package config

import (
	"fmt"
	"time"
)

// ServerConfig holds HTTP server tunables.
type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	Mode            string        `mapstructure:"mode"` // "debug" | "release" | "test"
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	RatePerMinute   int           `mapstructure:"rate_per_minute"`
}

// DatabaseConfig holds PostgreSQL connection parameters for the corpus store.
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"db_name"`
	SSLMode         string        `mapstructure:"ssl_mode"`
	MaxConns        int           `mapstructure:"max_conns"`
	MinConns        int           `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	MigrationPath   string        `mapstructure:"migration_path"`
}

// RedisConfig holds Redis connection parameters for the answer cache.
type RedisConfig struct {
	Addr         string        `mapstructure:"addr"`
	Password     string        `mapstructure:"password"`
	DB           int           `mapstructure:"db"`
	PoolSize     int           `mapstructure:"pool_size"`
	DialTimeout  time.Duration `mapstructure:"dial_timeout"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	KeyPrefix    string        `mapstructure:"key_prefix"`
	AnswerTTL    time.Duration `mapstructure:"answer_ttl"`
	Enabled      bool          `mapstructure:"enabled"`
}

// OpenSearchConfig holds OpenSearch cluster connection parameters for the
// optional full-text search backend.
type OpenSearchConfig struct {
	Addresses          []string `mapstructure:"addresses"`
	User               string   `mapstructure:"user"`
	Password           string   `mapstructure:"password"`
	InsecureSkipVerify bool     `mapstructure:"insecure_skip_verify"`
	IndexPrefix        string   `mapstructure:"index_prefix"`
}

// SearchConfig holds retrieval and ranking parameters.
type SearchConfig struct {
	// Backend selects the corpus searcher implementation:
	// "postgres" (default) or "opensearch".
	Backend   string `mapstructure:"backend"`
	LawLimit  int    `mapstructure:"law_limit"`
	CaseLimit int    `mapstructure:"case_limit"`
}

// IndexConfig holds offline index-builder and artifact parameters.
type IndexConfig struct {
	// ArtifactDir is the directory holding the serialized term-weight indices
	// and the legal keyword dictionary produced by the offline builder.
	ArtifactDir string `mapstructure:"artifact_dir"`
	// TopKeywords bounds the number of keywords each extraction pass
	// (TF-IDF, TextRank, dictionary match) contributes per question.
	TopKeywords int `mapstructure:"top_keywords"`
}

// LogConfig holds structured-logging parameters.  Mirrors
// logging.LogConfig; kept separate so config stays free of imports.
type LogConfig struct {
	Level            string   `mapstructure:"level"`  // "debug" | "info" | "warn" | "error"
	Format           string   `mapstructure:"format"` // "json" | "console"
	OutputPaths      []string `mapstructure:"output_paths"`
	ErrorOutputPaths []string `mapstructure:"error_output_paths"`
}

// Config is the root configuration structure for the whole system.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Redis      RedisConfig      `mapstructure:"redis"`
	OpenSearch OpenSearchConfig `mapstructure:"opensearch"`
	Search     SearchConfig     `mapstructure:"search"`
	Index      IndexConfig      `mapstructure:"index"`
	Log        LogConfig        `mapstructure:"log"`
}

// Validate performs semantic validation of the fully-populated Config.
// It returns the first error encountered; callers should treat any error as
// fatal and refuse to start the application.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("config: server.port %d is out of range [1, 65535]", c.Server.Port)
	}
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("config: server.mode %q is invalid; expected debug|release|test", c.Server.Mode)
	}

	if c.Database.Host == "" {
		return fmt.Errorf("config: database.host is required")
	}
	if c.Database.Port < 1 || c.Database.Port > 65535 {
		return fmt.Errorf("config: database.port %d is out of range [1, 65535]", c.Database.Port)
	}
	if c.Database.User == "" {
		return fmt.Errorf("config: database.user is required")
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("config: database.db_name is required")
	}
	if c.Database.MaxConns < 1 {
		return fmt.Errorf("config: database.max_conns must be ≥ 1, got %d", c.Database.MaxConns)
	}

	if c.Redis.Enabled && c.Redis.Addr == "" {
		return fmt.Errorf("config: redis.addr is required when redis is enabled")
	}

	switch c.Search.Backend {
	case "postgres", "opensearch":
	default:
		return fmt.Errorf("config: search.backend %q is invalid; expected postgres|opensearch", c.Search.Backend)
	}
	if c.Search.Backend == "opensearch" && len(c.OpenSearch.Addresses) == 0 {
		return fmt.Errorf("config: opensearch.addresses must contain at least one address")
	}
	if c.Search.LawLimit < 1 || c.Search.CaseLimit < 1 {
		return fmt.Errorf("config: search.law_limit and search.case_limit must be ≥ 1")
	}

	if c.Index.ArtifactDir == "" {
		return fmt.Errorf("config: index.artifact_dir is required")
	}
	if c.Index.TopKeywords < 1 {
		return fmt.Errorf("config: index.top_keywords must be ≥ 1, got %d", c.Index.TopKeywords)
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: log.level %q is invalid; expected debug|info|warn|error", c.Log.Level)
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("config: log.format %q is invalid; expected json|console", c.Log.Format)
	}

	return nil
}

// DSN renders the PostgreSQL connection string for the corpus store.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}
