package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	AppEnv   string
	LogLevel zerolog.Level
	Hub      HubConfig
}

// HubConfig controls the event hub's diagnostics.
type HubConfig struct {
	// TracePublishes logs every publish at debug level.
	TracePublishes bool
	// TraceExclude lists event names that are too chatty to trace.
	TraceExclude []string
}

// IsDev reports whether human-readable logging should be used.
func (c *Config) IsDev() bool {
	return c.AppEnv == "dev" || c.AppEnv == "development"
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	// A missing .env is fine, we fall back to the process environment.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	v := viper.New()

	bindings := map[string]string{
		"app.env":           "APP_ENV",
		"log.level":         "LOG_LEVEL",
		"hub.trace":         "HUB_TRACE",
		"hub.trace_exclude": "HUB_TRACE_EXCLUDE",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("could not bind %s: %w", key, err)
		}
	}

	v.SetDefault("app.env", "dev")
	v.SetDefault("log.level", "info")
	v.SetDefault("hub.trace", false)
	v.SetDefault("hub.trace_exclude", "user_update")

	level, err := zerolog.ParseLevel(strings.ToLower(v.GetString("log.level")))
	if err != nil {
		return nil, fmt.Errorf("LOG_LEVEL is invalid: %w", err)
	}
	if level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	cfg := Config{
		AppEnv:   v.GetString("app.env"),
		LogLevel: level,
		Hub: HubConfig{
			TracePublishes: v.GetBool("hub.trace"),
			TraceExclude:   splitList(v.GetString("hub.trace_exclude")),
		},
	}

	return &cfg, nil
}

// splitList turns "a, b,,c" into [a b c].
func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
