package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	DefaultAddr           = ":5000"
	DefaultMaxUploadBytes = 32 << 20
	DefaultRequestTimeout = 60 * time.Second
	DefaultEmptyStreak    = 50
)

type Config struct {
	Server  Server  `yaml:"server"`
	Convert Convert `yaml:"convert"`
	Cache   Cache   `yaml:"cache"`
	Log     Log     `yaml:"log"`
}

type Server struct {
	Addr           string        `yaml:"addr"`
	MaxUploadBytes int64         `yaml:"max_upload_bytes"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
}

type Convert struct {
	EmptyStreak int `yaml:"empty_streak"`
	Workers     int `yaml:"workers"`
}

type Cache struct {
	Driver string `yaml:"driver"` // "", "sqlite3" or "postgres"
	DSN    string `yaml:"dsn"`
}

type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "text" or "json"
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Server: Server{
			Addr:           DefaultAddr,
			MaxUploadBytes: DefaultMaxUploadBytes,
			RequestTimeout: DefaultRequestTimeout,
		},
		Convert: Convert{
			EmptyStreak: DefaultEmptyStreak,
			Workers:     1,
		},
		Log: Log{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads the YAML file at path on top of the defaults, then applies the
// environment overrides. An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return Config{}, fmt.Errorf("opening config: %w", err)
		}
		defer f.Close()
		dec := yaml.NewDecoder(f)
		dec.KnownFields(false)
		if err := dec.Decode(&cfg); err != nil {
			return Config{}, fmt.Errorf("decoding config %s: %w", path, err)
		}
	}
	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := strings.TrimSpace(os.Getenv("SHEETJSON_ADDR")); v != "" {
		c.Server.Addr = v
	}
	if v := strings.TrimSpace(os.Getenv("SHEETJSON_LOG_LEVEL")); v != "" {
		c.Log.Level = v
	}
	if v := strings.TrimSpace(os.Getenv("SHEETJSON_CACHE_DRIVER")); v != "" {
		c.Cache.Driver = v
	}
	if v := strings.TrimSpace(os.Getenv("SHEETJSON_CACHE_DSN")); v != "" {
		c.Cache.DSN = v
	}
}

func (c Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr must not be empty")
	}
	if c.Server.MaxUploadBytes <= 0 {
		return fmt.Errorf("server.max_upload_bytes must be positive, got %d", c.Server.MaxUploadBytes)
	}
	if c.Server.RequestTimeout < 0 {
		return fmt.Errorf("server.request_timeout must not be negative")
	}
	if c.Convert.EmptyStreak < 0 {
		return fmt.Errorf("convert.empty_streak must not be negative, got %d", c.Convert.EmptyStreak)
	}
	if c.Convert.Workers < 0 {
		return fmt.Errorf("convert.workers must not be negative, got %d", c.Convert.Workers)
	}
	switch c.Cache.Driver {
	case "":
	case "sqlite3", "postgres":
		if c.Cache.DSN == "" {
			return fmt.Errorf("cache.dsn is required for driver %q", c.Cache.Driver)
		}
	default:
		return fmt.Errorf("unknown cache.driver %q", c.Cache.Driver)
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	switch c.Log.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("unknown log.format %q", c.Log.Format)
	}
	return nil
}

// NewLogger builds the process logger described by the log section.
func (c Config) NewLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	if level, err := logrus.ParseLevel(c.Log.Level); err == nil {
		logger.SetLevel(level)
	}
	if c.Log.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return logger
}
