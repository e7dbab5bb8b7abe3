package cli

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"

	perrors "github.com/nathaniel-may/biscuit-packing/pkg/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
runs = 123
workers = 2
formats = ["png", "svg"]
output_dir = "out"
scale = 5.5
schedule = "geometric"
temperature = 42
cache_ttl = "1h30m"
cache_url = "redis://localhost:6379/1"
no_cache = true
`)

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}

	if cfg.Runs != 123 {
		t.Errorf("Runs = %d, want 123", cfg.Runs)
	}
	if cfg.Workers != 2 {
		t.Errorf("Workers = %d, want 2", cfg.Workers)
	}
	if len(cfg.Formats) != 2 || cfg.Formats[0] != "png" || cfg.Formats[1] != "svg" {
		t.Errorf("Formats = %v, want [png svg]", cfg.Formats)
	}
	if cfg.OutputDir != "out" {
		t.Errorf("OutputDir = %q, want %q", cfg.OutputDir, "out")
	}
	if cfg.Scale != 5.5 {
		t.Errorf("Scale = %v, want 5.5", cfg.Scale)
	}
	if cfg.Schedule != "geometric" {
		t.Errorf("Schedule = %q, want geometric", cfg.Schedule)
	}
	if cfg.Temperature != 42 {
		t.Errorf("Temperature = %v, want 42", cfg.Temperature)
	}
	if cfg.CacheTTL.Duration != 90*time.Minute {
		t.Errorf("CacheTTL = %v, want 1h30m", cfg.CacheTTL.Duration)
	}
	if cfg.CacheURL != "redis://localhost:6379/1" {
		t.Errorf("CacheURL = %q", cfg.CacheURL)
	}
	if !cfg.NoCache {
		t.Error("NoCache = false, want true")
	}
	if cfg.path != path {
		t.Errorf("path = %q, want %q", cfg.path, path)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unknown key", "runs = 10\nbiscuits = 4\n"},
		{"bad duration", "cache_ttl = \"soon\"\n"},
		{"bad syntax", "runs = = 1\n"},
		{"wrong type", "workers = \"many\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadConfig(writeConfig(t, tt.content))
			if !perrors.Is(err, perrors.ErrCodeInvalidConfig) {
				t.Errorf("loadConfig() error = %v, want %s", err, perrors.ErrCodeInvalidConfig)
			}
		})
	}
}

func TestLoadConfigMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig(\"\") error: %v", err)
	}
	if cfg.path != "" || cfg.Runs != 0 {
		t.Errorf("loadConfig(\"\") = %+v, want empty config", cfg)
	}

	if _, err := loadConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("loadConfig() with a missing explicit path should fail")
	}
}

func TestLoadConfigDefaultPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	if err := os.MkdirAll(filepath.Join(dir, appName), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, appName, "config.toml"), []byte("runs = 9\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig(\"\") error: %v", err)
	}
	if cfg.Runs != 9 {
		t.Errorf("Runs = %d, want 9", cfg.Runs)
	}
}

func TestConfigApply(t *testing.T) {
	var f runFlags
	cmd := &cobra.Command{Use: "test"}
	f.register(cmd)

	if err := cmd.Flags().Set("runs", "7"); err != nil {
		t.Fatal(err)
	}

	cfg := &Config{
		Runs:     500,
		Workers:  3,
		Formats:  []string{"pdf", "dxf"},
		Schedule: "boltzmann",
		CacheTTL: Duration{time.Hour},
	}
	cfg.apply(cmd, &f)

	if f.runs != 7 {
		t.Errorf("runs = %d, want 7 (flag wins over config)", f.runs)
	}
	if f.workers != 3 {
		t.Errorf("workers = %d, want 3", f.workers)
	}
	if f.formats != "pdf,dxf" {
		t.Errorf("formats = %q, want %q", f.formats, "pdf,dxf")
	}
	if f.schedule != "boltzmann" {
		t.Errorf("schedule = %q, want boltzmann", f.schedule)
	}
	if f.cacheTTL != time.Hour {
		t.Errorf("cacheTTL = %v, want 1h", f.cacheTTL)
	}
	if f.outputDir != "." {
		t.Errorf("outputDir = %q, want default %q", f.outputDir, ".")
	}
}
