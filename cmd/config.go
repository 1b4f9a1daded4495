package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/labstack/gommon/log"
)

// Config holds application configuration loaded from the environment.
type Config struct {
	HTTPPort         string
	LogLevel         string
	LogFormat        string
	MetricsNamespace string
	Currency         string
	OrderFile        string
}

// LoadConfig reads configuration from environment variables and an optional .env file.
// Variables already present in the environment win over the file.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	k := koanf.New(".")
	if err := k.Load(env.Provider("", ".", func(s string) string { return s }), nil); err != nil {
		return Config{}, fmt.Errorf("load env: %w", err)
	}

	return Config{
		HTTPPort:         valueOrDefault(k.String("HTTP_PORT"), "8080"),
		LogLevel:         strings.ToLower(valueOrDefault(k.String("LOG_LEVEL"), "info")),
		LogFormat:        strings.ToLower(valueOrDefault(k.String("LOG_FORMAT"), "json")),
		MetricsNamespace: valueOrDefault(k.String("METRICS_NAMESPACE"), "deliverycost"),
		Currency:         strings.ToUpper(valueOrDefault(k.String("DELIVERY_CURRENCY"), "PLN")),
		OrderFile:        strings.TrimSpace(k.String("ORDER_FILE")),
	}, nil
}

// HTTPAddr returns the address the HTTP server should bind to.
func (c Config) HTTPAddr() string {
	port := strings.TrimSpace(c.HTTPPort)
	if port == "" {
		port = "8080"
	}
	if strings.HasPrefix(port, ":") {
		return port
	}
	return "0.0.0.0:" + port
}

// EchoLogLevel maps LogLevel onto the level of echo's own logger.
func (c Config) EchoLogLevel() log.Lvl {
	switch c.LogLevel {
	case "debug", "trace":
		return log.DEBUG
	case "warn", "warning":
		return log.WARN
	case "error", "fatal", "panic":
		return log.ERROR
	case "disabled", "off":
		return log.OFF
	default:
		return log.INFO
	}
}

func valueOrDefault(value, fallback string) string {
	if trimmed := strings.TrimSpace(value); trimmed != "" {
		return trimmed
	}
	return fallback
}
