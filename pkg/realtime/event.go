package realtime

// Client event types (sent to the service).
const (
	EventTypeSessionUpdate          = "session.update"
	EventTypeInputAudioBufferAppend = "input_audio_buffer.append"
	EventTypeInputAudioBufferCommit = "input_audio_buffer.commit"
	EventTypeInputAudioBufferClear  = "input_audio_buffer.clear"
	EventTypeConversationItemCreate = "conversation.item.create"
	EventTypeResponseCreate         = "response.create"
	EventTypeResponseCancel         = "response.cancel"
)

// Server event types (received from the service).
const (
	EventTypeError = "error"

	EventTypeSessionCreated = "session.created"
	EventTypeSessionUpdated = "session.updated"

	EventTypeInputAudioBufferCommitted     = "input_audio_buffer.committed"
	EventTypeInputAudioBufferCleared       = "input_audio_buffer.cleared"
	EventTypeInputAudioBufferSpeechStarted = "input_audio_buffer.speech_started"
	EventTypeInputAudioBufferSpeechStopped = "input_audio_buffer.speech_stopped"

	EventTypeConversationItemCreated                          = "conversation.item.created"
	EventTypeConversationItemInputAudioTranscriptionCompleted = "conversation.item.input_audio_transcription.completed"
	EventTypeConversationItemInputAudioTranscriptionFailed    = "conversation.item.input_audio_transcription.failed"

	EventTypeResponseCreated = "response.created"
	EventTypeResponseDone    = "response.done"

	EventTypeResponseAudioDelta = "response.audio.delta"
	EventTypeResponseAudioDone  = "response.audio.done"

	EventTypeResponseAudioTranscriptDelta = "response.audio_transcript.delta"
	EventTypeResponseAudioTranscriptDone  = "response.audio_transcript.done"

	EventTypeResponseFunctionCallArgumentsDelta = "response.function_call_arguments.delta"
	EventTypeResponseFunctionCallArgumentsDone  = "response.function_call_arguments.done"

	EventTypeRateLimitsUpdated = "rate_limits.updated"
)

// ServerEvent is an event received from the Realtime API.
// Which fields are populated depends on Type.
type ServerEvent struct {
	// Type is the event type.
	Type string `json:"type"`

	// EventID is the unique identifier for this event.
	EventID string `json:"event_id,omitzero"`

	// Session carries session info for session.created and session.updated.
	Session *SessionResource `json:"session,omitzero"`

	// ItemID is the conversation item this event refers to.
	ItemID string `json:"item_id,omitzero"`

	// Transcript is the finalized transcription text
	// (conversation.item.input_audio_transcription.completed).
	Transcript string `json:"transcript,omitzero"`

	// Delta carries the incremental payload for *.delta events.
	// For response.audio.delta it is base64-encoded audio.
	Delta string `json:"delta,omitzero"`

	// ResponseID is the response identifier for response.* events.
	ResponseID string `json:"response_id,omitzero"`

	// CallID correlates a function call with its result.
	CallID string `json:"call_id,omitzero"`

	// Name is the function name (response.function_call_arguments.done).
	Name string `json:"name,omitzero"`

	// Arguments is the complete function arguments JSON text
	// (response.function_call_arguments.done). May be malformed.
	Arguments string `json:"arguments,omitzero"`

	// Error carries the error payload for error events.
	Error *APIError `json:"error,omitzero"`

	// Raw is the original JSON message.
	Raw []byte `json:"-"`
}
