// Package bridge relays between a browser WebSocket connection and the
// upstream realtime AI service for one presentation session.
//
// Each browser connection gets its own Bridge with an independently owned
// cursor and transport; there is no shared state across sessions. Two pump
// goroutines (client reader, upstream reader) fan in to a single event
// loop that owns all mutable session state, so handlers never run
// concurrently.
package bridge

import (
	"context"
	"iter"
	"log/slog"
	"sync"
	"time"

	"github.com/voxdeck/voxdeck/pkg/deck"
	"github.com/voxdeck/voxdeck/pkg/presenter"
	"github.com/voxdeck/voxdeck/pkg/realtime"
)

// ClientConn is the bridge's view of the browser connection.
// *websocket.Conn satisfies it.
type ClientConn interface {
	ReadJSON(v any) error
	WriteJSON(v any) error
}

// Upstream is the bridge's view of the realtime transport.
// *realtime.Client satisfies it.
type Upstream interface {
	Connect(ctx context.Context) error
	Disconnect() error
	ConfigureSession(config *realtime.SessionConfig) error
	SendAudio(audioBase64 string) error
	RequestResponse() error
	CancelResponse() error
	SendFunctionResult(callID string, result map[string]any) error
	Events() iter.Seq2[*realtime.ServerEvent, error]
}

// Options tunes a Bridge.
type Options struct {
	// Session configures the upstream session payload.
	Session presenter.SessionOptions

	// GraceDelay is the pause after the AI's farewell before an ending
	// session stops. Default: 1s.
	GraceDelay time.Duration
}

// Bridge relays one presentation session.
type Bridge struct {
	client     ClientConn
	upstream   Upstream
	cursor     *presenter.Cursor
	dispatcher *presenter.Dispatcher
	sessionCfg *realtime.SessionConfig
	graceDelay time.Duration

	// Mutable session state, owned by the run loop.
	state      State
	pendingEnd bool
	graceC     <-chan time.Time

	upstreamReady chan struct{}
	readyOnce     sync.Once
	cleanupOnce   sync.Once
}

// New creates a Bridge for one client connection over the given deck.
func New(client ClientConn, upstream Upstream, d *deck.Deck, opts Options) *Bridge {
	if opts.GraceDelay == 0 {
		opts.GraceDelay = time.Second
	}
	cursor := presenter.NewCursor(d)
	return &Bridge{
		client:        client,
		upstream:      upstream,
		cursor:        cursor,
		dispatcher:    presenter.NewDispatcher(cursor),
		sessionCfg:    presenter.SessionConfig(d, opts.Session),
		graceDelay:    opts.GraceDelay,
		state:         StateIdle,
		upstreamReady: make(chan struct{}),
	}
}

// State returns the current lifecycle state. It is only meaningful once
// Run has returned, or from within the run loop.
func (b *Bridge) State() State { return b.state }

// SessionID returns the session token of the owned cursor.
func (b *Bridge) SessionID() string { return b.cursor.SessionID() }

// Run relays events until the client disconnects, the session stops, or
// ctx is cancelled. Cleanup runs on every exit path.
func (b *Bridge) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer b.cleanup()

	// The client sees the initial cursor state before any session starts.
	b.send(slideChanged(b.cursor.Snapshot()))

	clientCh := make(chan ClientEvent)
	go b.pumpClient(ctx, clientCh)

	upstreamCh := make(chan *realtime.ServerEvent)
	go b.pumpUpstream(ctx, upstreamCh)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-clientCh:
			if !ok {
				slog.Info("client disconnected", "session_id", b.cursor.SessionID())
				b.stopSession()
				return nil
			}
			b.handleClientEvent(ctx, ev)

		case ev, ok := <-upstreamCh:
			if !ok {
				slog.Info("upstream event stream ended", "session_id", b.cursor.SessionID())
				b.stopSession()
				return nil
			}
			b.handleUpstreamEvent(ev)

		case <-b.graceC:
			b.stopSession()
		}

		if b.state == StateStopped {
			return nil
		}
	}
}

// pumpClient reads browser messages into ch until the connection ends.
func (b *Bridge) pumpClient(ctx context.Context, ch chan<- ClientEvent) {
	defer close(ch)
	for {
		var ev ClientEvent
		if err := b.client.ReadJSON(&ev); err != nil {
			slog.Debug("client read ended", "error", err)
			return
		}
		select {
		case ch <- ev:
		case <-ctx.Done():
			return
		}
	}
}

// pumpUpstream forwards upstream events into ch. It waits for the
// upstream-ready gate so no events are consumed before the session is
// configured.
func (b *Bridge) pumpUpstream(ctx context.Context, ch chan<- *realtime.ServerEvent) {
	defer close(ch)
	select {
	case <-b.upstreamReady:
	case <-ctx.Done():
		return
	}
	for ev, err := range b.upstream.Events() {
		if err != nil {
			slog.Error("upstream receive error", "error", err)
			return
		}
		select {
		case ch <- ev:
		case <-ctx.Done():
			return
		}
	}
}

// handleClientEvent processes one browser message.
func (b *Bridge) handleClientEvent(ctx context.Context, ev ClientEvent) {
	switch ev.Type {
	case ClientSessionStart:
		b.startSession(ctx)

	case ClientSessionStop:
		b.stopSession()

	case ClientAudioInput:
		if ev.Audio == "" {
			return
		}
		if err := b.upstream.SendAudio(ev.Audio); err != nil {
			slog.Warn("dropping client audio", "error", err)
		}

	case ClientSlideNavigate:
		var ok bool
		switch ev.Direction {
		case DirectionNext:
			_, ok = b.cursor.NextSlide()
		case DirectionPrev:
			_, ok = b.cursor.PreviousSlide()
		}
		// Failed navigation is silently ignored; stale or out-of-bound
		// requests are expected from the client.
		if ok {
			b.send(slideChanged(b.cursor.Snapshot()))
		}

	case ClientSlideGoto:
		if ev.SlideID == 0 {
			return
		}
		if _, ok := b.cursor.GoToSlide(ev.SlideID); ok {
			b.send(slideChanged(b.cursor.Snapshot()))
		}

	case ClientResponseCancel:
		if err := b.upstream.CancelResponse(); err != nil {
			slog.Warn("cancel response failed", "error", err)
		}

	default:
		slog.Debug("ignoring client event", "type", ev.Type)
	}
}

// handleUpstreamEvent processes one event from the realtime service.
func (b *Bridge) handleUpstreamEvent(ev *realtime.ServerEvent) {
	switch ev.Type {
	case realtime.EventTypeResponseAudioDelta:
		if ev.Delta != "" {
			b.send(audioOutput(ev.Delta))
		}

	case realtime.EventTypeResponseAudioDone:
		b.send(audioDone())
		b.maybeBeginEnding()

	case realtime.EventTypeConversationItemInputAudioTranscriptionCompleted:
		if ev.Transcript != "" {
			b.send(transcript(ev.Transcript, true, SpeakerUser))
		}

	case realtime.EventTypeResponseAudioTranscriptDelta:
		if ev.Delta != "" {
			b.send(transcript(ev.Delta, false, SpeakerAI))
		}

	case realtime.EventTypeResponseFunctionCallArgumentsDone:
		b.handleFunctionCall(ev)

	case realtime.EventTypeSessionCreated:
		slog.Info("upstream session created")

	case realtime.EventTypeSessionUpdated:
		slog.Info("upstream session updated")

	case realtime.EventTypeError:
		message := "Unknown error"
		if ev.Error != nil && ev.Error.Message != "" {
			message = ev.Error.Message
		}
		slog.Error("upstream error", "message", message)
		b.send(errorEvent(message, "openai_error"))

	case realtime.EventTypeResponseCreated:
		b.cursor.SetAISpeaking(true)

	case realtime.EventTypeResponseDone:
		b.cursor.SetAISpeaking(false)
		b.maybeBeginEnding()

	case realtime.EventTypeInputAudioBufferSpeechStarted:
		// Barge-in: a new user utterance unconditionally preempts an
		// in-progress AI response.
		b.cursor.SetAISpeaking(false)
		slog.Info("user started speaking, interrupting AI")
		if err := b.upstream.CancelResponse(); err != nil {
			slog.Warn("cancel response failed", "error", err)
		}
		b.send(audioInterrupted())

	default:
		slog.Debug("ignoring upstream event", "type", ev.Type)
	}
}

// handleFunctionCall resolves one completed function call.
func (b *Bridge) handleFunctionCall(ev *realtime.ServerEvent) {
	result, slide := b.dispatcher.Dispatch(ev.Name, ev.Arguments)

	if slide != nil {
		b.send(slideChanged(b.cursor.Snapshot()))
	}

	if err := b.upstream.SendFunctionResult(ev.CallID, result); err != nil {
		slog.Error("send function result failed", "error", err)
	}

	if result["action"] == presenter.ActionEndPresentation {
		slog.Info("end presentation requested, stopping after farewell")
		b.pendingEnd = true
	}
}

// startSession connects and configures the upstream, then activates the
// session. On failure the bridge emits an error event and stays Idle.
func (b *Bridge) startSession(ctx context.Context) {
	if b.state != StateIdle {
		slog.Warn("ignoring session.start", "state", b.state)
		return
	}
	b.state = StateConnecting
	b.send(connectionStatus(StatusConnecting, ""))

	if err := b.upstream.Connect(ctx); err != nil {
		slog.Error("failed to start session", "error", err)
		b.send(errorEvent(err.Error(), "session_start_failed"))
		b.state = StateIdle
		return
	}
	if err := b.upstream.ConfigureSession(b.sessionCfg); err != nil {
		slog.Error("failed to configure session", "error", err)
		b.send(errorEvent(err.Error(), "session_start_failed"))
		b.upstream.Disconnect()
		b.state = StateIdle
		return
	}

	b.signalReady()
	b.cursor.SetPresenting(true)

	b.send(sessionStarted(b.cursor.SessionID()))
	b.send(slideChanged(b.cursor.Snapshot()))

	if err := b.upstream.RequestResponse(); err != nil {
		slog.Error("initial response request failed", "error", err)
	}

	b.state = StateActive
	b.send(connectionStatus(StatusConnected, ""))
	slog.Info("session started", "session_id", b.cursor.SessionID())
}

// stopSession tears the session down. Stopped is terminal; a new session
// requires a new Bridge.
func (b *Bridge) stopSession() {
	if b.state == StateStopped {
		return
	}
	b.state = StateStopped
	b.cursor.SetPresenting(false)
	if err := b.upstream.Disconnect(); err != nil {
		slog.Debug("upstream disconnect", "error", err)
	}
	b.send(sessionStopped())
	slog.Info("session stopped", "session_id", b.cursor.SessionID())
}

// maybeBeginEnding starts the post-farewell grace pause once the AI has
// finished speaking after an end_presentation call.
func (b *Bridge) maybeBeginEnding() {
	if !b.pendingEnd || b.state != StateActive {
		return
	}
	slog.Info("AI finished farewell, stopping shortly",
		"grace", b.graceDelay, "session_id", b.cursor.SessionID())
	b.state = StateEnding
	b.graceC = time.After(b.graceDelay)
}

// signalReady opens the upstream-ready gate exactly once.
func (b *Bridge) signalReady() {
	b.readyOnce.Do(func() { close(b.upstreamReady) })
}

// cleanup is idempotent and reachable from every exit path: it force
// closes the upstream connection and unblocks a pump still waiting on the
// ready gate.
func (b *Bridge) cleanup() {
	b.cleanupOnce.Do(func() {
		if err := b.upstream.Disconnect(); err != nil {
			slog.Debug("cleanup disconnect", "error", err)
		}
		b.signalReady()
	})
}

// send writes one event to the client. Write failures are logged, not
// propagated; a dead client surfaces through its read pump.
func (b *Bridge) send(event any) {
	if err := b.client.WriteJSON(event); err != nil {
		slog.Error("error sending to client", "error", err)
	}
}
