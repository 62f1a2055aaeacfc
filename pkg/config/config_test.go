package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Failed to load default config: %v", err)
	}

	if cfg.App.LogLevel != "info" {
		t.Errorf("Expected default log level info, got %s", cfg.App.LogLevel)
	}
	if cfg.Data.Dir != "data" {
		t.Errorf("Expected default data dir 'data', got %s", cfg.Data.Dir)
	}
	if cfg.Data.TimeUnit != "hours" {
		t.Errorf("Expected default time unit hours, got %s", cfg.Data.TimeUnit)
	}
	if cfg.Scheduling.HorizonDays != 30 {
		t.Errorf("Expected default horizon 30, got %d", cfg.Scheduling.HorizonDays)
	}
	if cfg.Scheduling.UrgencyThresholdDays != 3 {
		t.Errorf("Expected default urgency threshold 3, got %d", cfg.Scheduling.UrgencyThresholdDays)
	}
	if cfg.Scheduling.NewProductUnitHours != 0.5 {
		t.Errorf("Expected default new-product unit hours 0.5, got %f", cfg.Scheduling.NewProductUnitHours)
	}
	if cfg.Output.Format != "text" {
		t.Errorf("Expected default output format text, got %s", cfg.Output.Format)
	}
}

func TestLoad_FromFile(t *testing.T) {
	content := `app:
  log_level: debug
data:
  dir: /var/lib/planner
  time_unit: seconds
scheduling:
  horizon_days: 14
  new_product_unit_hours: 0.25
output:
  format: json
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.App.LogLevel != "debug" {
		t.Errorf("Expected log level debug, got %s", cfg.App.LogLevel)
	}
	if cfg.Data.Dir != "/var/lib/planner" {
		t.Errorf("Expected data dir /var/lib/planner, got %s", cfg.Data.Dir)
	}
	if cfg.Data.TimeUnit != "seconds" {
		t.Errorf("Expected time unit seconds, got %s", cfg.Data.TimeUnit)
	}
	if cfg.Scheduling.HorizonDays != 14 {
		t.Errorf("Expected horizon 14, got %d", cfg.Scheduling.HorizonDays)
	}
	if cfg.Scheduling.NewProductUnitHours != 0.25 {
		t.Errorf("Expected new-product unit hours 0.25, got %f", cfg.Scheduling.NewProductUnitHours)
	}
	if cfg.Output.Format != "json" {
		t.Errorf("Expected output format json, got %s", cfg.Output.Format)
	}

	// Unset keys keep their defaults
	if cfg.Data.InspectorsFile != "inspectors.csv" {
		t.Errorf("Expected default inspectors file, got %s", cfg.Data.InspectorsFile)
	}
	if cfg.Scheduling.UrgencyThresholdDays != 3 {
		t.Errorf("Expected default urgency threshold 3, got %d", cfg.Scheduling.UrgencyThresholdDays)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("Expected error for missing config file")
	}
}
