package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"StockScope/internal/collector"
)

// Config holds all application configuration.
type Config struct {
	DataSource struct {
		Period string `yaml:"period"`
	} `yaml:"data_source"`
	Sheets struct {
		CredentialsFile string `yaml:"credentials_file"`
		SpreadsheetID   string `yaml:"spreadsheet_id"`
		ResultsSheet    string `yaml:"results_sheet"`
	} `yaml:"sheets"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Charts struct {
		OutputDir string `yaml:"output_dir"`
		Disabled  bool   `yaml:"disabled"`
	} `yaml:"charts"`
	Watch struct {
		Cron string `yaml:"cron"`
	} `yaml:"watch"`
	Concurrency int    `yaml:"concurrency"`
	Proxy       string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults. A missing file is not an error; defaults
// apply.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("STOCKSCOPE_PERIOD"); v != "" {
		cfg.DataSource.Period = v
	}
	if v := os.Getenv("SHEETS_CREDENTIALS_FILE"); v != "" {
		cfg.Sheets.CredentialsFile = v
	}
	if v := os.Getenv("SPREADSHEET_ID"); v != "" {
		cfg.Sheets.SpreadsheetID = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("STOCKSCOPE_CONCURRENCY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Concurrency = n
		}
	}

	// Defaults
	if cfg.DataSource.Period == "" {
		cfg.DataSource.Period = "1y"
	}
	if cfg.Sheets.CredentialsFile == "" {
		cfg.Sheets.CredentialsFile = "credentials.json"
	}
	if cfg.Sheets.ResultsSheet == "" {
		cfg.Sheets.ResultsSheet = "Analysis Results"
	}
	if cfg.Charts.OutputDir == "" {
		cfg.Charts.OutputDir = "graphs"
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 4
	}

	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if !collector.ValidPeriods[c.DataSource.Period] {
		return fmt.Errorf("data_source.period %q is not a valid lookback period", c.DataSource.Period)
	}
	if c.Concurrency <= 0 {
		return fmt.Errorf("concurrency must be positive")
	}
	return nil
}
