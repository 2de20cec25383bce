package config

import (
	"net"
	"strconv"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Taxonomy TaxonomyConfig `yaml:"taxonomy"`
	Analysis AnalysisConfig `yaml:"analysis"`
	Log      LogConfig      `yaml:"log"`
	CORS     CORSConfig     `yaml:"cors"`
}

// Taxonomy sources.
const (
	SourceFile     = "file"
	SourcePostgres = "postgres"
)

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"                env:"SERVER_HOST"                env-default:"0.0.0.0"`
	Port            int           `yaml:"port"                env:"SERVER_PORT"                env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"        env:"SERVER_READ_TIMEOUT"        env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"       env:"SERVER_WRITE_TIMEOUT"       env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"        env:"SERVER_IDLE_TIMEOUT"        env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"    env:"SERVER_SHUTDOWN_TIMEOUT"    env-default:"10s"`
	RateLimitPerMin int           `yaml:"rate_limit_per_min"  env:"SERVER_RATE_LIMIT_PER_MIN"  env-default:"600"`
	MaxBodyBytes    int64         `yaml:"max_body_bytes"      env:"SERVER_MAX_BODY_BYTES"      env-default:"1048576"`
	MaxSeriesLength int           `yaml:"max_series_length"   env:"SERVER_MAX_SERIES_LENGTH"   env-default:"100000"`
}

// DatabaseConfig holds PostgreSQL connection settings. DSN is required only
// for the postgres taxonomy source and the seeder.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// TaxonomyConfig selects where the lexical graph is loaded from.
type TaxonomyConfig struct {
	Source      string `yaml:"source"       env:"TAXONOMY_SOURCE"       env-default:"file"`
	WordNetPath string `yaml:"wordnet_path" env:"TAXONOMY_WORDNET_PATH"`
	ICPath      string `yaml:"ic_path"      env:"TAXONOMY_IC_PATH"`
}

// AnalysisConfig holds defaults for similarity and report commands.
type AnalysisConfig struct {
	DefaultMeasure string `yaml:"default_measure" env:"ANALYSIS_DEFAULT_MEASURE" env-default:"path"`
	ReportFormat   string `yaml:"report_format"   env:"ANALYSIS_REPORT_FORMAT"   env-default:"json"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// Addr returns the listen address of the HTTP server.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}
