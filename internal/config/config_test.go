package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, key := range []string{
		"DIFFBOT_TOKEN", "DIFFBOT_API_ROOT", "DIFFBOT_API_VERSION",
		"DIFFBOT_TIMEOUT", "DIFFBOT_TRANSPORT", "DIFFBOT_LOG_LEVEL", "DIFFBOT_LOG_ENCODING",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv() error = %v", err)
	}
	if cfg.APIRoot != "http://api.diffbot.com" {
		t.Errorf("APIRoot = %q", cfg.APIRoot)
	}
	if cfg.APIVersion != 2 {
		t.Errorf("APIVersion = %d", cfg.APIVersion)
	}
	if cfg.Token != "" || cfg.Timeout != "" || cfg.Transport != "" {
		t.Errorf("unexpected values: %+v", cfg)
	}
	if cfg.LogLevel != "warn" || cfg.LogEncoding != "console" {
		t.Errorf("log settings = %q/%q", cfg.LogLevel, cfg.LogEncoding)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("DIFFBOT_TOKEN", "secret")
	t.Setenv("DIFFBOT_API_ROOT", "http://localhost:8080")
	t.Setenv("DIFFBOT_API_VERSION", "3")
	t.Setenv("DIFFBOT_TIMEOUT", "1m")
	t.Setenv("DIFFBOT_TRANSPORT", "stdlib")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv() error = %v", err)
	}
	if cfg.Token != "secret" || cfg.APIRoot != "http://localhost:8080" || cfg.APIVersion != 3 {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.Transport != "stdlib" {
		t.Errorf("Transport = %q", cfg.Transport)
	}
}

func TestFromEnvInvalid(t *testing.T) {
	tests := map[string][2]string{
		"version not a number": {"DIFFBOT_API_VERSION", "two"},
		"version zero":         {"DIFFBOT_API_VERSION", "0"},
		"unknown transport":    {"DIFFBOT_TRANSPORT", "curl"},
		"bad timeout":          {"DIFFBOT_TIMEOUT", "soon"},
	}
	for name, kv := range tests {
		t.Run(name, func(t *testing.T) {
			t.Setenv(kv[0], kv[1])
			if _, err := FromEnv(); err == nil {
				t.Errorf("FromEnv() with %s=%s succeeded", kv[0], kv[1])
			}
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("DIFFBOT_TOKEN=from-dotenv\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	// registered so the variable set by godotenv is removed afterwards
	t.Setenv("DIFFBOT_TOKEN", "")
	os.Unsetenv("DIFFBOT_TOKEN")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Token != "from-dotenv" {
		t.Errorf("Token = %q, want from-dotenv", cfg.Token)
	}
}

func TestParseTimeout(t *testing.T) {
	tests := map[string]time.Duration{
		"":      0,
		"10s":   10 * time.Second,
		"1m30s": 90 * time.Second,
		"2d":    48 * time.Hour,
		"15":    15 * time.Second,
		"500ms": 500 * time.Millisecond,
	}
	for in, want := range tests {
		got, err := ParseTimeout(in)
		if err != nil {
			t.Errorf("ParseTimeout(%q) error = %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("ParseTimeout(%q) = %v, want %v", in, got, want)
		}
	}

	for _, in := range []string{"soon", "-5s"} {
		if _, err := ParseTimeout(in); err == nil {
			t.Errorf("ParseTimeout(%q) succeeded", in)
		}
	}
}
