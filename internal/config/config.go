// Package config centralises configuration parsing for the activities service.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config captures runtime configuration values for the activities service.
type Config struct {
	HTTPAddress        string
	LogLevel           string
	LogFormat          string
	KafkaBrokers       []string // Empty disables enrollment event publishing.
	EnrollmentTopic    string
	CORSAllowedOrigins []string
	ShutdownTimeout    time.Duration
}

// Load reads an optional .env file and the process environment into Config,
// applying defaults for local dev. Variables already set in the environment win over the file.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", file, err)
		}
	}

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("HTTP_ADDRESS", ":8000")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("KAFKA_BROKERS", "")
	v.SetDefault("ENROLLMENT_TOPIC", "enrollment_events")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:5173")
	v.SetDefault("SHUTDOWN_TIMEOUT", "15s")

	cfg := Config{
		HTTPAddress:        v.GetString("HTTP_ADDRESS"),
		LogLevel:           strings.ToLower(v.GetString("LOG_LEVEL")),
		LogFormat:          strings.ToLower(v.GetString("LOG_FORMAT")),
		KafkaBrokers:       splitAndTrim(v.GetString("KAFKA_BROKERS")),
		EnrollmentTopic:    v.GetString("ENROLLMENT_TOPIC"),
		CORSAllowedOrigins: splitAndTrim(v.GetString("CORS_ALLOWED_ORIGINS")),
		ShutdownTimeout:    v.GetDuration("SHUTDOWN_TIMEOUT"),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values the service cannot start with.
func (c Config) Validate() error {
	if strings.TrimSpace(c.HTTPAddress) == "" {
		return errors.New("HTTP_ADDRESS is required")
	}
	if c.LogFormat != "json" && c.LogFormat != "console" {
		return fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.LogFormat)
	}
	if c.ShutdownTimeout <= 0 {
		return errors.New("SHUTDOWN_TIMEOUT must be a positive duration")
	}
	if len(c.KafkaBrokers) > 0 && strings.TrimSpace(c.EnrollmentTopic) == "" {
		return errors.New("ENROLLMENT_TOPIC is required when KAFKA_BROKERS is set")
	}
	return nil
}

// EventsEnabled reports whether enrollment events go to Kafka.
func (c Config) EventsEnabled() bool {
	return len(c.KafkaBrokers) > 0
}

func splitAndTrim(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
