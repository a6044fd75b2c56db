package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DataSource.Period != "1y" {
		t.Errorf("default period: got %q, want 1y", cfg.DataSource.Period)
	}
	if cfg.Sheets.ResultsSheet != "Analysis Results" {
		t.Errorf("default results sheet: got %q", cfg.Sheets.ResultsSheet)
	}
	if cfg.Concurrency != 4 {
		t.Errorf("default concurrency: got %d, want 4", cfg.Concurrency)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoad_FileAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
data_source:
  period: 6mo
database:
  sqlite_path: data/test.db
charts:
  disabled: true
concurrency: 2
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("STOCKSCOPE_PERIOD", "2y")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DataSource.Period != "2y" {
		t.Errorf("env should override file: got %q, want 2y", cfg.DataSource.Period)
	}
	if cfg.Database.SQLitePath != "data/test.db" {
		t.Errorf("sqlite path: got %q", cfg.Database.SQLitePath)
	}
	if !cfg.Charts.Disabled {
		t.Error("charts.disabled should be true")
	}
	if cfg.Concurrency != 2 {
		t.Errorf("concurrency: got %d, want 2", cfg.Concurrency)
	}
}

func TestValidate_BadPeriod(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	cfg.DataSource.Period = "13mo"
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for bad period")
	}
}
