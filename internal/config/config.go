package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix scopes environment overrides, e.g. server.port -> MENU_SERVER_PORT.
const EnvPrefix = "MENU"

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Upload    UploadConfig    `mapstructure:"upload"`
	CORS      CORSConfig      `mapstructure:"cors"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Log       LogConfig       `mapstructure:"log"`
}

type ServerConfig struct {
	Port                   string `mapstructure:"port"`
	Mode                   string `mapstructure:"mode"`
	PublicBaseURL          string `mapstructure:"public_base_url"`
	ShutdownTimeoutSeconds int    `mapstructure:"shutdown_timeout_seconds"`
}

type DatabaseConfig struct {
	Type     string `mapstructure:"type"`     // sqlite, mysql, postgres
	DSN      string `mapstructure:"dsn"`      // overrides every field below when set
	Filename string `mapstructure:"filename"` // for sqlite
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSL      bool   `mapstructure:"ssl"`
}

type UploadConfig struct {
	Path         string `mapstructure:"path"`
	URLPrefix    string `mapstructure:"url_prefix"`
	MaxSizeMB    int    `mapstructure:"max_size_mb"`
	CacheControl string `mapstructure:"cache_control"`
}

type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allow_origins"`
}

type RateLimitConfig struct {
	Enabled bool    `mapstructure:"enabled"`
	RPS     float64 `mapstructure:"rps"`
	Burst   int     `mapstructure:"burst"`
}

type LogConfig struct {
	Level     string `mapstructure:"level"`
	Format    string `mapstructure:"format"`
	AddSource bool   `mapstructure:"add_source"`
}

// Load reads config.yaml from dir (or the working directory), applies MENU_*
// environment overrides and validates the result. A .env file in the working
// directory is loaded first when present.
func Load(dir string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := newViper(dir)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
		slog.Info("no config file found, using environment and defaults")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func newViper(dir string) *viper.Viper {
	v := viper.New()

	dir = strings.TrimSpace(dir)
	if dir == "" {
		dir = "config"
	}
	v.AddConfigPath(dir)
	v.AddConfigPath(".")
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetDefault("server.port", "5000")
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.public_base_url", "http://127.0.0.1:5000")
	v.SetDefault("server.shutdown_timeout_seconds", 5)
	v.SetDefault("database.type", "sqlite")
	v.SetDefault("database.dsn", "")
	v.SetDefault("database.filename", "database/menu.db")
	v.SetDefault("database.host", "127.0.0.1")
	v.SetDefault("database.port", "3306")
	v.SetDefault("database.user", "root")
	v.SetDefault("database.password", "root")
	v.SetDefault("database.name", "restaurante_db")
	v.SetDefault("database.ssl", false)
	v.SetDefault("upload.path", "uploads")
	v.SetDefault("upload.url_prefix", "/uploads/")
	v.SetDefault("upload.max_size_mb", 10)
	v.SetDefault("upload.cache_control", "public, max-age=86400")
	v.SetDefault("cors.allow_origins", []string{"*"})
	v.SetDefault("rate_limit.enabled", false)
	v.SetDefault("rate_limit.rps", 5)
	v.SetDefault("rate_limit.burst", 10)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.add_source", false)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return v
}

func (c *Config) normalize() {
	c.Server.PublicBaseURL = strings.TrimRight(strings.TrimSpace(c.Server.PublicBaseURL), "/")
	c.Server.Mode = strings.ToLower(strings.TrimSpace(c.Server.Mode))
	c.Database.Type = strings.ToLower(strings.TrimSpace(c.Database.Type))

	prefix := "/" + strings.Trim(strings.TrimSpace(c.Upload.URLPrefix), "/") + "/"
	if prefix == "//" {
		prefix = "/uploads/"
	}
	c.Upload.URLPrefix = prefix

	// An env override arrives as one comma separated string.
	if len(c.CORS.AllowOrigins) == 1 && strings.Contains(c.CORS.AllowOrigins[0], ",") {
		c.CORS.AllowOrigins = strings.Split(c.CORS.AllowOrigins[0], ",")
	}
	for i, origin := range c.CORS.AllowOrigins {
		c.CORS.AllowOrigins[i] = strings.TrimSpace(origin)
	}
}

// Validate checks the settings that would otherwise fail late at request time.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Server.Port) == "" {
		return errors.New("server.port is required")
	}

	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("invalid server.mode %q (must be debug, release or test)", c.Server.Mode)
	}

	switch c.Database.Type {
	case "sqlite", "mysql", "postgres":
	default:
		return fmt.Errorf("unsupported database.type %q (must be sqlite, mysql or postgres)", c.Database.Type)
	}

	u, err := url.Parse(c.Server.PublicBaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("server.public_base_url %q must be an absolute URL", c.Server.PublicBaseURL)
	}

	if strings.TrimSpace(c.Upload.Path) == "" {
		return errors.New("upload.path is required")
	}
	if c.Upload.MaxSizeMB <= 0 {
		return errors.New("upload.max_size_mb must be positive")
	}

	if c.RateLimit.Enabled && (c.RateLimit.RPS <= 0 || c.RateLimit.Burst <= 0) {
		return errors.New("rate_limit.rps and rate_limit.burst must be positive when enabled")
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Log.Level)] {
		return fmt.Errorf("invalid log.level %q (must be debug, info, warn or error)", c.Log.Level)
	}
	return nil
}

// ImageURL composes the public URL under which an uploaded file is served.
func (c *Config) ImageURL(filename string) string {
	return c.Server.PublicBaseURL + c.Upload.URLPrefix + url.PathEscape(filename)
}

// CheckUploadPath refuses an upload directory that resolves to the working
// directory itself, which would expose the source tree through /uploads.
func CheckUploadPath(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve upload path: %w", err)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}
	if absPath == cwd {
		return fmt.Errorf("upload.path %q must not be the working directory", path)
	}
	return nil
}
