package config

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/wordsim/internal/domain"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	switch c.Taxonomy.Source {
	case SourceFile:
		if c.Taxonomy.WordNetPath == "" {
			return fmt.Errorf("taxonomy.wordnet_path is required for the %q source", SourceFile)
		}
	case SourcePostgres:
		if c.Database.DSN == "" {
			return fmt.Errorf("database.dsn is required for the %q taxonomy source", SourcePostgres)
		}
	default:
		return fmt.Errorf("taxonomy.source must be %q or %q (got %q)", SourceFile, SourcePostgres, c.Taxonomy.Source)
	}

	if _, err := domain.ParseMeasure(c.Analysis.DefaultMeasure); err != nil {
		return fmt.Errorf("analysis.default_measure: %w", err)
	}
	switch strings.ToLower(c.Analysis.ReportFormat) {
	case "json", "yaml":
	default:
		return fmt.Errorf("analysis.report_format must be json or yaml (got %q)", c.Analysis.ReportFormat)
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	if err := c.Server.validate(); err != nil {
		return fmt.Errorf("server: %w", err)
	}

	return nil
}

// Measure returns the parsed default measure. Validate guarantees it parses.
func (c AnalysisConfig) Measure() domain.Measure {
	m, err := domain.ParseMeasure(c.DefaultMeasure)
	if err != nil {
		return domain.MeasurePath
	}
	return m
}

func (s *ServerConfig) validate() error {
	if s.Port <= 0 || s.Port > 65535 {
		return fmt.Errorf("port must be in 1..65535 (got %d)", s.Port)
	}
	if s.ReadTimeout <= 0 || s.WriteTimeout <= 0 || s.IdleTimeout <= 0 || s.ShutdownTimeout <= 0 {
		return fmt.Errorf("timeouts must be > 0")
	}
	if s.RateLimitPerMin <= 0 {
		return fmt.Errorf("rate_limit_per_min must be > 0 (got %d)", s.RateLimitPerMin)
	}
	if s.MaxBodyBytes <= 0 {
		return fmt.Errorf("max_body_bytes must be > 0 (got %d)", s.MaxBodyBytes)
	}
	if s.MaxSeriesLength < 2 {
		return fmt.Errorf("max_series_length must be >= 2 (got %d)", s.MaxSeriesLength)
	}
	return nil
}
