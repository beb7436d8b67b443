package presenter

import (
	"fmt"

	"github.com/voxdeck/voxdeck/pkg/deck"
	"github.com/voxdeck/voxdeck/pkg/realtime"
)

// SessionOptions tunes the upstream session configuration.
// Zero values fall back to the defaults listed per field.
type SessionOptions struct {
	// Voice is the output voice. Default: alloy.
	Voice string

	// Temperature controls randomness. Default: 0.7.
	Temperature float64

	// VADThreshold is the speech detection sensitivity. Default: 0.5.
	VADThreshold float64

	// VADPrefixPaddingMs is audio included before speech start. Default: 300.
	VADPrefixPaddingMs int

	// VADSilenceDurationMs is silence that ends a turn. Default: 500.
	VADSilenceDurationMs int

	// TranscriptionModel transcribes user audio. Default: whisper-1.
	TranscriptionModel string
}

// SessionConfig assembles the full session.update payload for a deck:
// instructions embedding the slide summaries, the function registry, audio
// formats, transcription, and server-side turn detection.
func SessionConfig(d *deck.Deck, opts SessionOptions) *realtime.SessionConfig {
	if opts.Voice == "" {
		opts.Voice = realtime.VoiceAlloy
	}
	if opts.Temperature == 0 {
		opts.Temperature = 0.7
	}
	if opts.VADThreshold == 0 {
		opts.VADThreshold = 0.5
	}
	if opts.VADPrefixPaddingMs == 0 {
		opts.VADPrefixPaddingMs = 300
	}
	if opts.VADSilenceDurationMs == 0 {
		opts.VADSilenceDurationMs = 500
	}
	if opts.TranscriptionModel == "" {
		opts.TranscriptionModel = "whisper-1"
	}

	return &realtime.SessionConfig{
		Modalities:        []string{realtime.ModalityText, realtime.ModalityAudio},
		Instructions:      Instructions(d),
		Voice:             opts.Voice,
		InputAudioFormat:  realtime.AudioFormatPCM16,
		OutputAudioFormat: realtime.AudioFormatPCM16,
		InputAudioTranscription: &realtime.TranscriptionConfig{
			Model: opts.TranscriptionModel,
		},
		TurnDetection: &realtime.TurnDetection{
			Type:              realtime.VADServerVAD,
			Threshold:         opts.VADThreshold,
			PrefixPaddingMs:   opts.VADPrefixPaddingMs,
			SilenceDurationMs: opts.VADSilenceDurationMs,
		},
		Tools:       Tools(d),
		ToolChoice:  realtime.ToolChoiceAuto,
		Temperature: &opts.Temperature,
	}
}

// Instructions builds the presenter system prompt for a deck.
func Instructions(d *deck.Deck) string {
	return fmt.Sprintf(`You are an engaging AI presenter giving a presentation.

## Your Slides
%s

## Your Behavior
1. When the presentation starts, introduce yourself and begin presenting the current slide
2. Speak naturally and conversationally, as if giving a live presentation
3. When users ask questions:
   - If the question relates to a different slide, use navigate_to_slide() to go there first
   - Then answer the question in context of that slide
4. Keep responses concise but informative (2-3 sentences typically)
5. Be enthusiastic and make the content accessible to beginners
6. On the last slide, after presenting, ask if they have questions or want to revisit anything
7. If the user says "no", "bye", "thanks", "that's all", or indicates they're done, call end_presentation() to end the session gracefully

## Navigation Rules
- When a question clearly maps to a slide title, navigate there before answering
- Use get_current_slide_info() if you are unsure which slide is showing

## Voice Style
- Warm and friendly
- Clear explanations without jargon
- Use analogies when helpful
- Pause briefly between key points`, d.Summaries())
}
