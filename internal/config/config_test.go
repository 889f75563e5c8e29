package config

import (
	"os"
	"sync"
	"testing"
	"time"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	tmpFile, err := os.CreateTemp(t.TempDir(), "config-*.yaml")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	if _, err := tmpFile.Write([]byte(content)); err != nil {
		t.Fatalf("Failed to write temp file: %v", err)
	}
	tmpFile.Close()
	return tmpFile.Name()
}

func reset() {
	instance = nil
	once = *new(sync.Once)
}

func TestLoad(t *testing.T) {
	path := writeTempConfig(t, `location:
  name: "Field A"
  latitude: 35.0
  longitude: 139.0
  timezone: "UTC"
forecast:
  days: 5
  timeout: 3s
  cache_ttl: 1m
redis:
  enabled: true
  addr: "redis:6379"
locale: en
`)
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("HATAKE_HTTP_ADDR", "")
	reset()

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Location.Name != "Field A" {
		t.Errorf("Location.Name = %v, want %v", cfg.Location.Name, "Field A")
	}
	if cfg.Forecast.Days != 5 {
		t.Errorf("Forecast.Days = %v, want %v", cfg.Forecast.Days, 5)
	}
	if cfg.Forecast.Timeout != 3*time.Second {
		t.Errorf("Forecast.Timeout = %v, want %v", cfg.Forecast.Timeout, 3*time.Second)
	}
	if cfg.Forecast.CacheTTL != time.Minute {
		t.Errorf("Forecast.CacheTTL = %v, want %v", cfg.Forecast.CacheTTL, time.Minute)
	}
	if !cfg.Redis.Enabled || cfg.Redis.Addr != "redis:6379" {
		t.Errorf("Redis = %+v, want enabled at redis:6379", cfg.Redis)
	}
	if cfg.Locale != "en" {
		t.Errorf("Locale = %v, want en", cfg.Locale)
	}
	// untouched sections keep their defaults
	if cfg.Server.Addr != ":8080" {
		t.Errorf("Server.Addr = %v, want :8080", cfg.Server.Addr)
	}
	if cfg.Forecast.Retries != 3 {
		t.Errorf("Forecast.Retries = %v, want 3", cfg.Forecast.Retries)
	}
}

func TestLoad_EmptyPathUsesDefaults(t *testing.T) {
	t.Setenv("HATAKE_HTTP_ADDR", "")
	t.Setenv("HATAKE_LOCALE", "")
	reset()

	cfg, err := Load("")
	if err != nil {
		t.Skipf("default timezone unavailable: %v", err)
	}
	if cfg.Location.Latitude != 34.65 || cfg.Location.Longitude != 138.85 {
		t.Errorf("Location = %+v, want Minami-Izu", cfg.Location)
	}
	if cfg.Locale != "ja" {
		t.Errorf("Locale = %v, want ja", cfg.Locale)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeTempConfig(t, "location:\n  timezone: UTC\n")
	t.Setenv("HATAKE_HTTP_ADDR", ":9090")
	t.Setenv("HATAKE_LOG_LEVEL", "debug")
	t.Setenv("REDIS_ENABLED", "true")
	t.Setenv("REDIS_ADDR", "cache:6380")
	reset()

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Addr != ":9090" {
		t.Errorf("Server.Addr = %v, want :9090", cfg.Server.Addr)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %v, want debug", cfg.Log.Level)
	}
	if !cfg.Redis.Enabled || cfg.Redis.Addr != "cache:6380" {
		t.Errorf("Redis = %+v, want enabled at cache:6380", cfg.Redis)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeTempConfig(t, "invalid: [yaml: content")
	reset()

	if _, err := Load(path); err == nil {
		t.Error("Expected error for invalid YAML, got nil")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	reset()

	if _, err := Load("/nonexistent/path/config.yaml"); err == nil {
		t.Error("Expected error for missing file, got nil")
	}
}

func TestGet(t *testing.T) {
	path := writeTempConfig(t, "location:\n  timezone: UTC\n")
	reset()

	if _, err := Load(path); err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	cfg := Get()
	if cfg == nil {
		t.Fatal("Get() returned nil")
	}
	if cfg.TimeLocation() != time.UTC {
		t.Errorf("TimeLocation() = %v, want UTC", cfg.TimeLocation())
	}
}

func TestGet_Panic(t *testing.T) {
	reset()

	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected Get() to panic when config not loaded")
		}
	}()

	Get()
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		c := Default()
		c.Location.Timezone = "UTC"
		return c
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"valid config", func(c *Config) {}, false},
		{"latitude out of range", func(c *Config) { c.Location.Latitude = 91 }, true},
		{"longitude out of range", func(c *Config) { c.Location.Longitude = -181 }, true},
		{"unknown timezone", func(c *Config) { c.Location.Timezone = "Mars/Olympus" }, true},
		{"zero days", func(c *Config) { c.Forecast.Days = 0 }, true},
		{"too many days", func(c *Config) { c.Forecast.Days = 17 }, true},
		{"zero timeout", func(c *Config) { c.Forecast.Timeout = 0 }, true},
		{"unsupported locale", func(c *Config) { c.Locale = "fr" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			err := c.validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
