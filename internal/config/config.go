package config

import (
	"fmt"
	"os"
	"strconv"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

type Location struct {
	Name      string  `yaml:"name"`
	Latitude  float64 `yaml:"latitude"`
	Longitude float64 `yaml:"longitude"`
	Timezone  string  `yaml:"timezone"`
}

var (
	instance *Config
	once     sync.Once
)

// Config holds the dashboard settings for the single monitored location.
type Config struct {
	Location Location `yaml:"location"`
	Forecast struct {
		BaseURL  string        `yaml:"base_url"`
		Days     int           `yaml:"days"`
		Timeout  time.Duration `yaml:"timeout"`
		Retries  uint64        `yaml:"retries"`
		CacheTTL time.Duration `yaml:"cache_ttl"`
	} `yaml:"forecast"`
	Server struct {
		Addr            string        `yaml:"addr"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`
	Redis struct {
		Enabled   bool   `yaml:"enabled"`
		Addr      string `yaml:"addr"`
		Password  string `yaml:"password"`
		DB        int    `yaml:"db"`
		KeyPrefix string `yaml:"key_prefix"`
	} `yaml:"redis"`
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
	Locale string `yaml:"locale"`
}

// Default returns the settings for the Minami-Izu field.
func Default() *Config {
	c := &Config{
		Location: Location{
			Name:      "南伊豆",
			Latitude:  34.65,
			Longitude: 138.85,
			Timezone:  "Asia/Tokyo",
		},
		Locale: "ja",
	}
	c.Forecast.Days = 7
	c.Forecast.Timeout = 10 * time.Second
	c.Forecast.Retries = 3
	c.Forecast.CacheTTL = 10 * time.Minute
	c.Server.Addr = ":8080"
	c.Server.ShutdownTimeout = 10 * time.Second
	c.Redis.Addr = "localhost:6379"
	c.Redis.KeyPrefix = "hatake"
	c.Log.Level = "info"
	c.Log.Format = "text"
	return c
}

// Load reads the YAML file at configPath over the defaults, applies environment
// overrides and validates the result. An empty path loads the defaults only.
func Load(configPath string) (*Config, error) {
	var err error
	once.Do(func() {
		instance, err = read(configPath)
	})

	return instance, err
}

func read(configPath string) (*Config, error) {
	cfg := Default()

	if configPath != "" {
		data, readErr := os.ReadFile(configPath)
		if readErr != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configPath, readErr)
		}

		if parseErr := yaml.Unmarshal(data, cfg); parseErr != nil {
			return nil, fmt.Errorf("failed to parse config: %w", parseErr)
		}
	}

	cfg.applyEnv()

	if validateErr := cfg.validate(); validateErr != nil {
		return nil, validateErr
	}
	return cfg, nil
}

func Get() *Config {
	if instance == nil {
		panic("config not loaded - call config.Load() first")
	}
	return instance
}

func (c *Config) applyEnv() {
	c.Server.Addr = getEnv("HATAKE_HTTP_ADDR", c.Server.Addr)
	c.Log.Level = getEnv("HATAKE_LOG_LEVEL", c.Log.Level)
	c.Locale = getEnv("HATAKE_LOCALE", c.Locale)

	redisCfg := GetRedisConfig(c)
	c.Redis.Addr = redisCfg.Addr
	c.Redis.Password = redisCfg.Password
	c.Redis.DB = redisCfg.DB

	if v := os.Getenv("REDIS_ENABLED"); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			c.Redis.Enabled = enabled
		}
	}
}

func (c *Config) validate() error {
	if c.Location.Latitude < -90 || c.Location.Latitude > 90 {
		return fmt.Errorf("location.latitude must be between -90 and 90")
	}
	if c.Location.Longitude < -180 || c.Location.Longitude > 180 {
		return fmt.Errorf("location.longitude must be between -180 and 180")
	}
	if _, err := time.LoadLocation(c.Location.Timezone); err != nil {
		return fmt.Errorf("location.timezone %q: %w", c.Location.Timezone, err)
	}
	if c.Forecast.Days < 1 || c.Forecast.Days > 16 {
		return fmt.Errorf("forecast.days must be between 1 and 16")
	}
	if c.Forecast.Timeout <= 0 {
		return fmt.Errorf("forecast.timeout must be positive")
	}
	if c.Locale != "ja" && c.Locale != "en" {
		return fmt.Errorf("locale %q is not supported", c.Locale)
	}
	return nil
}

// TimeLocation returns the configured timezone as a *time.Location.
func (c *Config) TimeLocation() *time.Location {
	loc, err := time.LoadLocation(c.Location.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
