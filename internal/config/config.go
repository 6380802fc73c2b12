package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
}

// ServerConfig represents server configuration
type ServerConfig struct {
	Port string `yaml:"port"`
	Mode string `yaml:"mode"` // debug/release
}

// DatabaseConfig represents database configuration
type DatabaseConfig struct {
	Type string `yaml:"type"` // sqlite
	Path string `yaml:"path"`
}

// AuthConfig represents token issuance configuration
type AuthConfig struct {
	Secret          string `yaml:"secret"`
	Issuer          string `yaml:"issuer"`
	AccessTokenTTL  string `yaml:"access_token_ttl"`  // Go duration, e.g. "30m"
	RefreshTokenTTL string `yaml:"refresh_token_ttl"` // Go duration, e.g. "168h"
	PurgeInterval   string `yaml:"purge_interval"`    // Cron expression for revoked-token cleanup
}

// AccessTTL parses the access token lifetime, defaulting to 30 minutes
func (a *AuthConfig) AccessTTL() time.Duration {
	d, err := time.ParseDuration(a.AccessTokenTTL)
	if err != nil || d <= 0 {
		return 30 * time.Minute
	}
	return d
}

// RefreshTTL parses the refresh token lifetime, defaulting to 7 days
func (a *AuthConfig) RefreshTTL() time.Duration {
	d, err := time.ParseDuration(a.RefreshTokenTTL)
	if err != nil || d <= 0 {
		return 7 * 24 * time.Hour
	}
	return d
}

// LoadConfig loads configuration from a YAML file and applies
// environment variable overrides
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	applyEnvOverrides(&config)

	return &config, nil
}

// applyEnvOverrides lets deployment environments override file values
func applyEnvOverrides(cfg *Config) {
	if val := os.Getenv("PORT"); val != "" {
		cfg.Server.Port = val
	}
	if val := os.Getenv("SERVER_MODE"); val != "" {
		cfg.Server.Mode = val
	}
	if val := os.Getenv("DATABASE_PATH"); val != "" {
		cfg.Database.Path = val
	}
	if val := os.Getenv("JWT_SECRET"); val != "" {
		cfg.Auth.Secret = val
	}
	if val := os.Getenv("ACCESS_TOKEN_TTL"); val != "" {
		cfg.Auth.AccessTokenTTL = val
	}
	if val := os.Getenv("REFRESH_TOKEN_TTL"); val != "" {
		cfg.Auth.RefreshTokenTTL = val
	}
}
