package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestApplyDefaults(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()

	if cfg.Name != "arrkit" {
		t.Errorf("Name = %q", cfg.Name)
	}
	if cfg.Environment != "development" {
		t.Errorf("Environment = %q", cfg.Environment)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Logging.Level = %q", cfg.Logging.Level)
	}
	if cfg.Observability.Endpoint != "localhost:4318" || !cfg.Observability.Insecure {
		t.Errorf("Observability = %+v", cfg.Observability)
	}
	if cfg.Observability.SampleRate != 1.0 {
		t.Errorf("SampleRate = %v", cfg.Observability.SampleRate)
	}
	if cfg.Queue.DefaultLimit != 100 {
		t.Errorf("Queue.DefaultLimit = %d", cfg.Queue.DefaultLimit)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults pass", func(c *Config) {}, ""},
		{"bad log level", func(c *Config) { c.Logging.Level = "loud" }, "logging.level"},
		{"bad environment", func(c *Config) { c.Environment = "qa" }, "environment"},
		{"bad sample rate", func(c *Config) { c.Observability.SampleRate = 2 }, "sample_rate"},
		{"zero queue limit", func(c *Config) { c.Queue.DefaultLimit = -1 }, "default_limit"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var cfg Config
			cfg.ApplyDefaults()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Errorf("Validate = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("Validate = %v, want %q", err, tc.wantErr)
			}
		})
	}
}

func TestLoadWithNoFiles(t *testing.T) {
	cfg, err := Load(WithFileSystem(&fakeFS{}))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Queue.DefaultLimit != 100 || cfg.Logging.Level != "warn" {
		t.Errorf("defaults not applied: %+v", cfg)
	}
}

func TestLoadFromConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	content := `
name: demo
environment: staging
logging:
  level: debug
  format: json
queue:
  default_limit: 7
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(WithConfigFile(path), WithEnvFile("does-not-exist"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Name != "demo" || cfg.Environment != "staging" {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Errorf("logging = %+v", cfg.Logging)
	}
	if cfg.Queue.DefaultLimit != 7 {
		t.Errorf("queue limit = %d", cfg.Queue.DefaultLimit)
	}
	// Unset sections still get defaults.
	if cfg.Observability.Endpoint != "localhost:4318" {
		t.Errorf("observability = %+v", cfg.Observability)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	if err := os.WriteFile(path, []byte("logging:\n  level: info\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("ARRKIT_LOGGING_LEVEL", "error")

	cfg, err := Load(WithConfigFile(path), WithEnvFile("does-not-exist"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Logging.Level != "error" {
		t.Errorf("Logging.Level = %q, want env override", cfg.Logging.Level)
	}
}

func TestLoadRejectsInvalidFileValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	if err := os.WriteFile(path, []byte("logging:\n  level: shout\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(WithConfigFile(path), WithEnvFile("does-not-exist")); err == nil {
		t.Error("expected validation error")
	}
}

// fakeFS pretends no files exist.
type fakeFS struct{}

func (fakeFS) Exists(string) bool { return false }

func (fakeFS) LoadEnv(string) error { return nil }
