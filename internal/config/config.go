package config

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

const DefaultPath = "configs/config.toml"

const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type User struct {
	Username     string
	PasswordHash string `toml:"password_hash"`
	Role         string
}

type Config struct {
	Server struct {
		Host            string
		LogFile         string `toml:"log_file"`
		LogLevel        string `toml:"log_level"`
		ReadTimeout     time.Duration
		WriteTimeout    time.Duration
		StrReadTimeout  string `toml:"read_timeout"`
		StrWriteTimeout string `toml:"write_timeout"`
	}
	Auth struct {
		Enabled            bool
		JWTSecret          string `toml:"jwt_secret"`
		AccessTokenTTL     time.Duration
		RefreshTokenTTL    time.Duration
		StrAccessTokenTTL  string `toml:"access_token_ttl"`
		StrRefreshTokenTTL string `toml:"refresh_token_ttl"`
		Users              []User
	}
	Storage struct {
		Driver     string
		SQLitePath string `toml:"sqlite_path"`
	}
	Database struct {
		Host     string
		User     string
		Password string
		Database string
	}
	Redis struct {
		Enabled       bool
		RedisAddr     string `toml:"redis_addr"`
		RedisPassword string `toml:"redis_password"`
		RedisDB       int    `toml:"redis_db"`
	}
	Lookup struct {
		CountriesURL string `toml:"countries_url"`
		Timeout      time.Duration
		CacheTTL     time.Duration
		StrTimeout   string `toml:"timeout"`
		StrCacheTTL  string `toml:"cache_ttl"`
	}
	Seed struct {
		Enabled bool
	}
}

func GetConfig(path string, logger *slog.Logger) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Error("Error read config file", slog.String("path", path), slog.String("error", err.Error()))
		return nil, err
	}

	cfg, err := Parse(string(data))
	if err != nil {
		logger.Error("Error decode config file", slog.String("path", path), slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Config is loaded", slog.String("path", path))
	return cfg, nil
}

// Parse decodes a TOML document, applies defaults and validates the result.
func Parse(data string) (*Config, error) {
	var cfg Config

	if _, err := toml.Decode(data, &cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	setDefaults(&cfg)

	durations := []struct {
		name string
		raw  string
		dst  *time.Duration
	}{
		{"server.read_timeout", cfg.Server.StrReadTimeout, &cfg.Server.ReadTimeout},
		{"server.write_timeout", cfg.Server.StrWriteTimeout, &cfg.Server.WriteTimeout},
		{"auth.access_token_ttl", cfg.Auth.StrAccessTokenTTL, &cfg.Auth.AccessTokenTTL},
		{"auth.refresh_token_ttl", cfg.Auth.StrRefreshTokenTTL, &cfg.Auth.RefreshTokenTTL},
		{"lookup.timeout", cfg.Lookup.StrTimeout, &cfg.Lookup.Timeout},
		{"lookup.cache_ttl", cfg.Lookup.StrCacheTTL, &cfg.Lookup.CacheTTL},
	}
	for _, d := range durations {
		v, err := time.ParseDuration(d.raw)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", d.name, err)
		}
		*d.dst = v
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = ":8080"
	}
	if cfg.Server.LogFile == "" {
		cfg.Server.LogFile = "logs/budget_planner.log"
	}
	if cfg.Server.LogLevel == "" {
		cfg.Server.LogLevel = "info"
	}
	if cfg.Server.StrReadTimeout == "" {
		cfg.Server.StrReadTimeout = "10s"
	}
	if cfg.Server.StrWriteTimeout == "" {
		cfg.Server.StrWriteTimeout = "10s"
	}
	if cfg.Auth.StrAccessTokenTTL == "" {
		cfg.Auth.StrAccessTokenTTL = "15m"
	}
	if cfg.Auth.StrRefreshTokenTTL == "" {
		cfg.Auth.StrRefreshTokenTTL = "168h"
	}
	if cfg.Storage.Driver == "" {
		cfg.Storage.Driver = DriverMemory
	}
	if cfg.Storage.SQLitePath == "" {
		cfg.Storage.SQLitePath = "budget_planner.db"
	}
	if cfg.Lookup.CountriesURL == "" {
		cfg.Lookup.CountriesURL = "https://restcountries.com/v3.1"
	}
	if cfg.Lookup.StrTimeout == "" {
		cfg.Lookup.StrTimeout = "5s"
	}
	if cfg.Lookup.StrCacheTTL == "" {
		cfg.Lookup.StrCacheTTL = "24h"
	}
}

func (c *Config) validate() error {
	switch c.Storage.Driver {
	case DriverMemory, DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}

	if _, err := ParseLevel(c.Server.LogLevel); err != nil {
		return err
	}

	if c.Auth.Enabled {
		if c.Auth.JWTSecret == "" {
			return fmt.Errorf("auth.jwt_secret is required when auth is enabled")
		}
		if !c.Redis.Enabled {
			return fmt.Errorf("redis must be enabled when auth is enabled")
		}
	}

	return nil
}

// FindUser returns the configured user with the given name.
func (c *Config) FindUser(username string) (User, bool) {
	for _, u := range c.Auth.Users {
		if u.Username == username {
			return u, true
		}
	}
	return User{}, false
}

func ParseLevel(level string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return l, fmt.Errorf("invalid server.log_level %q: %w", level, err)
	}
	return l, nil
}
