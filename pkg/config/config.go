// Package config provides process configuration for the voxdeck server.
//
// Configuration is an explicit value constructed once at startup from an
// optional YAML file plus environment overrides, then passed by reference
// into the server and transport constructors. There is no global lookup.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
)

// Config holds the full server configuration.
type Config struct {
	// OpenAIAPIKey is the upstream service credential. Required to start
	// sessions; the HTTP API works without it.
	OpenAIAPIKey string `yaml:"openai_api_key"`

	// OpenAIRealtimeModel is the upstream model ID.
	OpenAIRealtimeModel string `yaml:"openai_realtime_model"`

	// OpenAIRealtimeURL is the upstream WebSocket endpoint.
	OpenAIRealtimeURL string `yaml:"openai_realtime_url"`

	// Host and Port form the listen address.
	Host string `yaml:"host"`
	Port int    `yaml:"port"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// CORSOrigins lists allowed browser origins.
	CORSOrigins []string `yaml:"cors_origins"`

	// Voice selects the AI output voice.
	Voice string `yaml:"voice"`

	// Temperature controls upstream response randomness.
	Temperature float64 `yaml:"temperature"`

	// VADThreshold, VADPrefixPaddingMs and VADSilenceDurationMs tune the
	// upstream turn detection.
	VADThreshold         float64 `yaml:"vad_threshold"`
	VADPrefixPaddingMs   int     `yaml:"vad_prefix_padding_ms"`
	VADSilenceDurationMs int     `yaml:"vad_silence_duration_ms"`

	// DeckPath points at a YAML deck file. Empty means the built-in deck.
	DeckPath string `yaml:"deck_path"`
}

// Default returns the configuration defaults.
func Default() *Config {
	return &Config{
		OpenAIRealtimeModel:  "gpt-4o-realtime-preview-2024-12-17",
		OpenAIRealtimeURL:    "wss://api.openai.com/v1/realtime",
		Host:                 "0.0.0.0",
		Port:                 8000,
		LogLevel:             "info",
		CORSOrigins:          []string{"http://localhost:5173", "http://localhost:3000"},
		Voice:                "alloy",
		Temperature:          0.7,
		VADThreshold:         0.5,
		VADPrefixPaddingMs:   300,
		VADSilenceDurationMs: 500,
	}
}

// Load builds the configuration from an optional YAML file and the
// environment. Environment variables override file values.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

// applyEnv overlays environment variables onto the configuration.
func (c *Config) applyEnv() {
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		c.OpenAIAPIKey = v
	}
	if v := os.Getenv("OPENAI_REALTIME_MODEL"); v != "" {
		c.OpenAIRealtimeModel = v
	}
	if v := os.Getenv("OPENAI_REALTIME_URL"); v != "" {
		c.OpenAIRealtimeURL = v
	}
	if v := os.Getenv("VOXDECK_HOST"); v != "" {
		c.Host = v
	}
	if v := os.Getenv("VOXDECK_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Port = port
		}
	}
	if v := os.Getenv("VOXDECK_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("VOXDECK_CORS_ORIGINS"); v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		c.CORSOrigins = origins
	}
	if v := os.Getenv("VOXDECK_DECK_PATH"); v != "" {
		c.DeckPath = v
	}
}

// Addr returns the listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
