package auth

import (
	"fmt"
	"time"

	"taskboard-backend/internal/config"
)

const defaultTokenExpiry = 24 * time.Hour

// Config holds the settings for issuing and verifying tokens
type Config struct {
	JWTSecret   string
	TokenExpiry time.Duration
	Issuer      string
}

// NewConfig builds the auth configuration from the application config
func NewConfig(cfg *config.Config) (*Config, error) {
	expiry := defaultTokenExpiry
	if cfg.JWTExpiryHours > 0 {
		expiry = time.Duration(cfg.JWTExpiryHours) * time.Hour
	}

	authCfg := &Config{
		JWTSecret:   cfg.JWTSecret,
		TokenExpiry: expiry,
		Issuer:      "taskboard-backend",
	}

	if err := authCfg.Validate(); err != nil {
		return nil, err
	}
	return authCfg, nil
}

// Validate checks that the configuration is usable
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if c.TokenExpiry <= 0 {
		return fmt.Errorf("token expiry must be positive")
	}
	return nil
}
