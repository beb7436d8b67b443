package bridge

import "github.com/voxdeck/voxdeck/pkg/presenter"

// Client event types (browser to bridge).
const (
	ClientSessionStart   = "session.start"
	ClientSessionStop    = "session.stop"
	ClientAudioInput     = "audio.input"
	ClientSlideNavigate  = "slide.navigate"
	ClientSlideGoto      = "slide.goto"
	ClientResponseCancel = "response.cancel"
)

// Navigation directions for slide.navigate.
const (
	DirectionNext = "next"
	DirectionPrev = "prev"
)

// ClientEvent is a message received from the browser.
// Which fields are populated depends on Type.
type ClientEvent struct {
	// Type is the event type.
	Type string `json:"type"`

	// Audio is base64-encoded PCM16 audio (audio.input).
	Audio string `json:"audio,omitzero"`

	// Direction is "next" or "prev" (slide.navigate).
	Direction string `json:"direction,omitzero"`

	// SlideID is the navigation target (slide.goto).
	SlideID int `json:"slide_id,omitzero"`
}

// Server event types (bridge to browser).
const (
	ServerSessionStarted   = "session.started"
	ServerSessionStopped   = "session.stopped"
	ServerAudioOutput      = "audio.output"
	ServerAudioDone        = "audio.done"
	ServerAudioInterrupted = "audio.interrupted"
	ServerSlideChanged     = "slide.changed"
	ServerTranscript       = "transcript"
	ServerError            = "error"
	ServerConnectionStatus = "connection.status"
)

// Transcript speakers.
const (
	SpeakerUser = "user"
	SpeakerAI   = "ai"
)

// Connection statuses.
const (
	StatusConnecting   = "connecting"
	StatusConnected    = "connected"
	StatusDisconnected = "disconnected"
	StatusError        = "error"
)

// SessionStartedEvent confirms a started session.
type SessionStartedEvent struct {
	Type      string `json:"type"`
	SessionID string `json:"session_id"`
}

func sessionStarted(id string) SessionStartedEvent {
	return SessionStartedEvent{Type: ServerSessionStarted, SessionID: id}
}

// SessionStoppedEvent confirms a stopped session.
type SessionStoppedEvent struct {
	Type string `json:"type"`
}

func sessionStopped() SessionStoppedEvent {
	return SessionStoppedEvent{Type: ServerSessionStopped}
}

// AudioOutputEvent carries a chunk of base64-encoded AI speech.
type AudioOutputEvent struct {
	Type  string `json:"type"`
	Audio string `json:"audio"`
}

func audioOutput(audio string) AudioOutputEvent {
	return AudioOutputEvent{Type: ServerAudioOutput, Audio: audio}
}

// AudioDoneEvent marks the end of an AI speech segment.
type AudioDoneEvent struct {
	Type string `json:"type"`
}

func audioDone() AudioDoneEvent {
	return AudioDoneEvent{Type: ServerAudioDone}
}

// AudioInterruptedEvent tells the client the AI was cut off by the user.
type AudioInterruptedEvent struct {
	Type string `json:"type"`
}

func audioInterrupted() AudioInterruptedEvent {
	return AudioInterruptedEvent{Type: ServerAudioInterrupted}
}

// SlideChangedEvent broadcasts the new cursor state after navigation.
type SlideChangedEvent struct {
	Type        string   `json:"type"`
	SlideID     int      `json:"slide_id"`
	Title       string   `json:"title"`
	Content     []string `json:"content"`
	Narration   string   `json:"narration"`
	TotalSlides int      `json:"total_slides"`
	HasNext     bool     `json:"has_next"`
	HasPrevious bool     `json:"has_previous"`
}

func slideChanged(info presenter.SlideInfo) SlideChangedEvent {
	return SlideChangedEvent{
		Type:        ServerSlideChanged,
		SlideID:     info.SlideID,
		Title:       info.Title,
		Content:     info.Content,
		Narration:   info.Narration,
		TotalSlides: info.TotalSlides,
		HasNext:     info.HasNext,
		HasPrevious: info.HasPrevious,
	}
}

// TranscriptEvent carries user or AI speech text.
type TranscriptEvent struct {
	Type    string `json:"type"`
	Text    string `json:"text"`
	IsFinal bool   `json:"is_final"`
	Speaker string `json:"speaker"`
}

func transcript(text string, isFinal bool, speaker string) TranscriptEvent {
	return TranscriptEvent{Type: ServerTranscript, Text: text, IsFinal: isFinal, Speaker: speaker}
}

// ErrorEvent reports a failure to the client. Errors are never fatal to
// the connection by themselves.
type ErrorEvent struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Code    string `json:"code,omitzero"`
}

func errorEvent(message, code string) ErrorEvent {
	return ErrorEvent{Type: ServerError, Message: message, Code: code}
}

// ConnectionStatusEvent reports upstream connection progress.
type ConnectionStatusEvent struct {
	Type    string `json:"type"`
	Status  string `json:"status"`
	Message string `json:"message,omitzero"`
}

func connectionStatus(status, message string) ConnectionStatusEvent {
	return ConnectionStatusEvent{Type: ServerConnectionStatus, Status: status, Message: message}
}
