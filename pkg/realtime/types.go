package realtime

import "github.com/google/jsonschema-go/jsonschema"

// Models supported by the Realtime API.
const (
	ModelGPT4oRealtimePreview         = "gpt-4o-realtime-preview"
	ModelGPT4oRealtimePreview20241217 = "gpt-4o-realtime-preview-2024-12-17"
	ModelGPT4oMiniRealtimePreview     = "gpt-4o-mini-realtime-preview"
)

// Audio formats supported by the Realtime API.
const (
	// AudioFormatPCM16 is 16-bit PCM at 24kHz, mono, little-endian.
	AudioFormatPCM16 = "pcm16"
	// AudioFormatG711ULaw is G.711 u-law at 8kHz.
	AudioFormatG711ULaw = "g711_ulaw"
	// AudioFormatG711ALaw is G.711 A-law at 8kHz.
	AudioFormatG711ALaw = "g711_alaw"
)

// Voice options for audio output.
const (
	VoiceAlloy   = "alloy"
	VoiceAsh     = "ash"
	VoiceCoral   = "coral"
	VoiceEcho    = "echo"
	VoiceSage    = "sage"
	VoiceShimmer = "shimmer"
	VoiceVerse   = "verse"
)

// Modality types.
const (
	ModalityText  = "text"
	ModalityAudio = "audio"
)

// Tool choice options.
const (
	ToolChoiceAuto     = "auto"
	ToolChoiceNone     = "none"
	ToolChoiceRequired = "required"
)

// VADServerVAD enables server-side voice activity detection.
const VADServerVAD = "server_vad"

// SessionConfig is the session.update payload.
type SessionConfig struct {
	// Modalities specifies the output modalities.
	Modalities []string `json:"modalities,omitzero"`

	// Instructions is the system prompt.
	Instructions string `json:"instructions,omitzero"`

	// Voice is the voice ID for audio output.
	Voice string `json:"voice,omitzero"`

	// InputAudioFormat specifies the input audio format. Default: pcm16.
	InputAudioFormat string `json:"input_audio_format,omitzero"`

	// OutputAudioFormat specifies the output audio format. Default: pcm16.
	OutputAudioFormat string `json:"output_audio_format,omitzero"`

	// InputAudioTranscription enables transcription of user audio.
	InputAudioTranscription *TranscriptionConfig `json:"input_audio_transcription,omitzero"`

	// TurnDetection configures server-side voice activity detection.
	TurnDetection *TurnDetection `json:"turn_detection,omitzero"`

	// Tools defines the functions the model may call.
	Tools []Tool `json:"tools,omitzero"`

	// ToolChoice specifies how the model should use tools ("auto", "none",
	// "required").
	ToolChoice string `json:"tool_choice,omitzero"`

	// Temperature controls randomness (0.6-1.2). Default: 0.8.
	Temperature *float64 `json:"temperature,omitzero"`

	// MaxResponseOutputTokens limits the output length.
	MaxResponseOutputTokens *int `json:"max_response_output_tokens,omitzero"`
}

// TranscriptionConfig configures input audio transcription.
type TranscriptionConfig struct {
	// Model is the transcription model to use. Default: whisper-1.
	Model string `json:"model,omitzero"`
}

// TurnDetection configures voice activity detection.
type TurnDetection struct {
	// Type is the VAD mode, e.g. "server_vad".
	Type string `json:"type,omitzero"`

	// Threshold is the VAD sensitivity (0.0-1.0). Default: 0.5.
	Threshold float64 `json:"threshold,omitzero"`

	// PrefixPaddingMs is the padding before speech start (ms). Default: 300.
	PrefixPaddingMs int `json:"prefix_padding_ms,omitzero"`

	// SilenceDurationMs is the silence that ends a turn (ms). Default: 500.
	SilenceDurationMs int `json:"silence_duration_ms,omitzero"`
}

// Tool describes a callable function exposed to the model.
type Tool struct {
	// Type is always "function".
	Type string `json:"type"`

	// Name is the function name.
	Name string `json:"name"`

	// Description describes what the function does.
	Description string `json:"description,omitzero"`

	// Parameters is the JSON Schema for the function arguments.
	Parameters *jsonschema.Schema `json:"parameters,omitzero"`
}

// SessionResource is the session state echoed by the server.
type SessionResource struct {
	ID                string   `json:"id,omitzero"`
	Object            string   `json:"object,omitzero"`
	Model             string   `json:"model,omitzero"`
	ExpiresAt         int64    `json:"expires_at,omitzero"`
	Modalities        []string `json:"modalities,omitzero"`
	Voice             string   `json:"voice,omitzero"`
	InputAudioFormat  string   `json:"input_audio_format,omitzero"`
	OutputAudioFormat string   `json:"output_audio_format,omitzero"`
}
