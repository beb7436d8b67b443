package presenter

import (
	"strings"
	"testing"

	"github.com/voxdeck/voxdeck/pkg/deck"
	"github.com/voxdeck/voxdeck/pkg/realtime"
)

func TestSessionConfigDefaults(t *testing.T) {
	d := deck.Default()
	cfg := SessionConfig(d, SessionOptions{})

	if cfg.Voice != realtime.VoiceAlloy {
		t.Errorf("Voice = %q", cfg.Voice)
	}
	if cfg.Temperature == nil || *cfg.Temperature != 0.7 {
		t.Errorf("Temperature = %v", cfg.Temperature)
	}
	if cfg.InputAudioFormat != realtime.AudioFormatPCM16 || cfg.OutputAudioFormat != realtime.AudioFormatPCM16 {
		t.Errorf("audio formats = %q/%q", cfg.InputAudioFormat, cfg.OutputAudioFormat)
	}
	if cfg.InputAudioTranscription == nil || cfg.InputAudioTranscription.Model != "whisper-1" {
		t.Errorf("transcription = %+v", cfg.InputAudioTranscription)
	}
	td := cfg.TurnDetection
	if td == nil || td.Type != realtime.VADServerVAD || td.Threshold != 0.5 ||
		td.PrefixPaddingMs != 300 || td.SilenceDurationMs != 500 {
		t.Errorf("turn detection = %+v", td)
	}
	if cfg.ToolChoice != realtime.ToolChoiceAuto {
		t.Errorf("ToolChoice = %q", cfg.ToolChoice)
	}
	if len(cfg.Tools) != 3 {
		t.Fatalf("Tools = %d, want 3", len(cfg.Tools))
	}
	if !strings.Contains(cfg.Instructions, d.Summaries()) {
		t.Error("instructions do not embed the slide summaries")
	}
}

func TestSessionConfigOverrides(t *testing.T) {
	cfg := SessionConfig(deck.Default(), SessionOptions{
		Voice:                realtime.VoiceShimmer,
		Temperature:          0.9,
		VADSilenceDurationMs: 800,
	})

	if cfg.Voice != realtime.VoiceShimmer {
		t.Errorf("Voice = %q", cfg.Voice)
	}
	if *cfg.Temperature != 0.9 {
		t.Errorf("Temperature = %v", *cfg.Temperature)
	}
	if cfg.TurnDetection.SilenceDurationMs != 800 {
		t.Errorf("SilenceDurationMs = %d", cfg.TurnDetection.SilenceDurationMs)
	}
}

func TestTools(t *testing.T) {
	tools := Tools(deck.Default())

	names := map[string]realtime.Tool{}
	for _, tool := range tools {
		if tool.Type != "function" {
			t.Errorf("tool %s type = %q", tool.Name, tool.Type)
		}
		if tool.Parameters == nil {
			t.Errorf("tool %s has no parameter schema", tool.Name)
		}
		names[tool.Name] = tool
	}

	nav, ok := names[FuncNavigateToSlide]
	if !ok {
		t.Fatal("navigate_to_slide missing from registry")
	}
	if got := nav.Parameters.Required; len(got) != 1 || got[0] != "slide_id" {
		t.Errorf("navigate required = %v", got)
	}
	if max := nav.Parameters.Properties["slide_id"].Maximum; max == nil || *max != 5 {
		t.Errorf("slide_id maximum = %v", max)
	}

	if _, ok := names[FuncGetCurrentSlideInfo]; !ok {
		t.Error("get_current_slide_info missing from registry")
	}
	if _, ok := names[FuncEndPresentation]; !ok {
		t.Error("end_presentation missing from registry")
	}
}
