// SPDX-License-Identifier: AGPL-3.0-only
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

var AppVersion = "dev"

type AppConfig struct {
	Port          int
	ProfileData   string
	SessionSecret []byte
	GinMode       string
	LogLevel      string
	Development   bool
}

// LoadConfig reads the environment, after loading an optional .env file.
func LoadConfig() (*AppConfig, error) {
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv builds the config from a lookup function, so callers can supply
// something other than the process environment.
func FromEnv(getenv func(string) string) (*AppConfig, error) {
	cfg := &AppConfig{
		Port:        8080,
		ProfileData: strings.TrimSpace(getenv("PROFILE_DATA")),
		GinMode:     getenv("GIN_MODE"),
		LogLevel:    strings.ToLower(getenv("LOG_LEVEL")),
		Development: strings.EqualFold(getenv("APP_ENV"), "development"),
	}

	if p := getenv("PORT"); p != "" {
		port, err := strconv.Atoi(p)
		if err != nil || port <= 0 || port > 65535 {
			return nil, fmt.Errorf("invalid PORT %q", p)
		}
		cfg.Port = port
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	switch cfg.GinMode {
	case "":
		cfg.GinMode = "release"
		if cfg.Development {
			cfg.GinMode = "debug"
		}
	case "debug", "release", "test":
	default:
		return nil, fmt.Errorf("invalid GIN_MODE %q", cfg.GinMode)
	}

	secret := getenv("SESSION_SECRET")
	if secret == "" {
		// Sessions then only live as long as the process, same as the state.
		secret = uuid.NewString() + uuid.NewString()
	}
	cfg.SessionSecret = []byte(secret)

	return cfg, nil
}

func (c *AppConfig) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
