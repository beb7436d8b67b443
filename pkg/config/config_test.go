package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg := Default()

	if cfg.Port != 8000 {
		t.Errorf("Port = %d", cfg.Port)
	}
	if cfg.OpenAIRealtimeURL != "wss://api.openai.com/v1/realtime" {
		t.Errorf("OpenAIRealtimeURL = %q", cfg.OpenAIRealtimeURL)
	}
	if cfg.Voice != "alloy" || cfg.Temperature != 0.7 {
		t.Errorf("voice/temperature = %q/%v", cfg.Voice, cfg.Temperature)
	}
	if cfg.Addr() != "0.0.0.0:8000" {
		t.Errorf("Addr() = %q", cfg.Addr())
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "voxdeck.yaml")
	data := []byte(`openai_api_key: sk-test
port: 9100
voice: shimmer
cors_origins:
  - https://slides.example.com
vad_silence_duration_ms: 800
`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.OpenAIAPIKey != "sk-test" {
		t.Errorf("OpenAIAPIKey = %q", cfg.OpenAIAPIKey)
	}
	if cfg.Port != 9100 {
		t.Errorf("Port = %d", cfg.Port)
	}
	if cfg.Voice != "shimmer" {
		t.Errorf("Voice = %q", cfg.Voice)
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "https://slides.example.com" {
		t.Errorf("CORSOrigins = %v", cfg.CORSOrigins)
	}
	if cfg.VADSilenceDurationMs != 800 {
		t.Errorf("VADSilenceDurationMs = %d", cfg.VADSilenceDurationMs)
	}
	// Unset fields keep their defaults.
	if cfg.Host != "0.0.0.0" {
		t.Errorf("Host = %q", cfg.Host)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() of missing file succeeded")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-env")
	t.Setenv("VOXDECK_PORT", "9200")
	t.Setenv("VOXDECK_CORS_ORIGINS", "https://a.example.com, https://b.example.com")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.OpenAIAPIKey != "sk-env" {
		t.Errorf("OpenAIAPIKey = %q", cfg.OpenAIAPIKey)
	}
	if cfg.Port != 9200 {
		t.Errorf("Port = %d", cfg.Port)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "https://b.example.com" {
		t.Errorf("CORSOrigins = %v", cfg.CORSOrigins)
	}
}
