// Package config loads scope.yaml, the per-company settings file at the
// root of a bookkeeping repository.
package config

import (
	"fmt"
	"os"
	"regexp"
	"time"

	"github.com/caarlos0/env/v10"
	"gopkg.in/yaml.v3"
)

// FileName is the config file name at the repository root.
const FileName = "scope.yaml"

// Config represents the top-level scope.yaml configuration.
type Config struct {
	Business BusinessConfig `yaml:"business"`
	Fiscal   FiscalConfig   `yaml:"fiscal"`
	Log      LogConfig      `yaml:"log"`
	Git      GitConfig      `yaml:"git"`
}

// BusinessConfig identifies the company.
type BusinessConfig struct {
	Name       string `yaml:"name"`
	OrgNr      string `yaml:"orgnr"`
	EntityType string `yaml:"entity_type"`
}

// FiscalConfig defines the fiscal year boundaries.
type FiscalConfig struct {
	YearStart string `yaml:"year_start"` // "MM-DD" format, e.g. "01-01"
}

// LogConfig controls CLI logging. Environment variables override the file.
type LogConfig struct {
	Level  string `yaml:"level"  env:"SCOPE_LOG_LEVEL"`
	Format string `yaml:"format" env:"SCOPE_LOG_FORMAT"`
}

// GitConfig controls git integration.
type GitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit"  env:"SCOPE_GIT_AUTO_COMMIT"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// Load reads a scope.yaml file from disk and applies environment overrides.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("applying environment: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new aktiebolag.
func Default(businessName, orgnr string) *Config {
	return &Config{
		Business: BusinessConfig{
			Name:       businessName,
			OrgNr:      orgnr,
			EntityType: "aktiebolag",
		},
		Fiscal: FiscalConfig{
			YearStart: "01-01",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
		Git: GitConfig{
			AutoCommit:  true,
			AuthorName:  "Scope",
			AuthorEmail: "scope@localhost",
		},
	}
}

var orgnrPattern = regexp.MustCompile(`^\d{6}-?\d{4}$`)

// Validate checks the fields every filing needs.
func (c *Config) Validate() error {
	if c.Business.Name == "" {
		return fmt.Errorf("business.name is required")
	}
	if !orgnrPattern.MatchString(c.Business.OrgNr) {
		return fmt.Errorf("business.orgnr %q is not NNNNNN-NNNN", c.Business.OrgNr)
	}
	if _, err := time.Parse("01-02", c.Fiscal.YearStart); err != nil {
		return fmt.Errorf("fiscal.year_start %q is not MM-DD", c.Fiscal.YearStart)
	}
	return nil
}

// FiscalYear returns the first and last day of the fiscal year that
// starts in the given calendar year.
func (c *Config) FiscalYear(year int) (start, end time.Time, err error) {
	md, err := time.Parse("01-02", c.Fiscal.YearStart)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("parsing fiscal.year_start %q: %w", c.Fiscal.YearStart, err)
	}
	start = time.Date(year, md.Month(), md.Day(), 0, 0, 0, 0, time.UTC)
	end = start.AddDate(1, 0, -1)
	return start, end, nil
}
