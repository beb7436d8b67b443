package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"iter"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// DefaultURL is the default WebSocket endpoint.
const DefaultURL = "wss://api.openai.com/v1/realtime"

// Config holds the transport configuration. It is constructed once at
// process start and passed in explicitly; there is no ambient lookup.
type Config struct {
	// APIKey is the service credential. Required.
	APIKey string

	// Model is the model ID. Default: gpt-4o-realtime-preview-2024-12-17.
	Model string

	// URL is the WebSocket endpoint. Default: DefaultURL.
	URL string

	// DialTimeout bounds the connection handshake. Default: 15s.
	DialTimeout time.Duration
}

// Client manages one duplex connection to the Realtime API.
// It is not restartable: after Disconnect, create a new instance.
type Client struct {
	cfg Config

	mu        sync.Mutex
	conn      *websocket.Conn
	connected bool

	closeCh   chan struct{}
	closeOnce sync.Once
	eventsCh  chan eventOrError
}

type eventOrError struct {
	event *ServerEvent
	err   error
}

// NewClient creates a transport from the given configuration.
func NewClient(cfg Config) *Client {
	if cfg.Model == "" {
		cfg.Model = ModelGPT4oRealtimePreview20241217
	}
	if cfg.URL == "" {
		cfg.URL = DefaultURL
	}
	if cfg.DialTimeout == 0 {
		cfg.DialTimeout = 15 * time.Second
	}
	return &Client{
		cfg:      cfg,
		closeCh:  make(chan struct{}),
		eventsCh: make(chan eventOrError, 100),
	}
}

// Connect establishes the WebSocket connection and starts the background
// reader. It fails with *ConnectionError if the handshake is rejected.
func (c *Client) Connect(ctx context.Context) error {
	if c.cfg.APIKey == "" {
		return fmt.Errorf("realtime: API key is required")
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn != nil {
		return fmt.Errorf("realtime: already connected")
	}

	url := fmt.Sprintf("%s?model=%s", c.cfg.URL, c.cfg.Model)

	headers := http.Header{}
	headers.Set("Authorization", "Bearer "+c.cfg.APIKey)
	headers.Set("OpenAI-Beta", "realtime=v1")

	dialer := websocket.Dialer{
		HandshakeTimeout: c.cfg.DialTimeout,
	}

	conn, resp, err := dialer.DialContext(ctx, url, headers)
	if err != nil {
		cerr := &ConnectionError{Err: err}
		if resp != nil {
			cerr.HTTPStatus = resp.StatusCode
		}
		return cerr
	}

	c.conn = conn
	c.connected = true
	slog.Info("connected to realtime API", "model", c.cfg.Model)

	go c.readLoop(conn)
	return nil
}

// Connected reports whether the transport currently holds an open connection.
func (c *Client) Connected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.connected
}

// Disconnect closes the connection if open. It is idempotent.
func (c *Client) Disconnect() error {
	var err error
	c.closeOnce.Do(func() {
		close(c.closeCh)
		c.mu.Lock()
		if c.conn != nil {
			err = c.conn.Close()
		}
		c.connected = false
		c.mu.Unlock()
		slog.Info("disconnected from realtime API")
	})
	return err
}

// ConfigureSession sends a session.update control message.
func (c *Client) ConfigureSession(config *SessionConfig) error {
	return c.sendEvent(map[string]any{
		"event_id": generateEventID(),
		"type":     EventTypeSessionUpdate,
		"session":  config,
	})
}

// SendAudio appends base64-encoded audio to the input buffer.
func (c *Client) SendAudio(audioBase64 string) error {
	return c.sendEvent(map[string]any{
		"event_id": generateEventID(),
		"type":     EventTypeInputAudioBufferAppend,
		"audio":    audioBase64,
	})
}

// CommitAudio commits the input audio buffer. Only needed when server VAD
// is disabled.
func (c *Client) CommitAudio() error {
	return c.sendEvent(map[string]any{
		"event_id": generateEventID(),
		"type":     EventTypeInputAudioBufferCommit,
	})
}

// RequestResponse asks the model to generate a response.
func (c *Client) RequestResponse() error {
	return c.sendEvent(map[string]any{
		"event_id": generateEventID(),
		"type":     EventTypeResponseCreate,
	})
}

// CancelResponse cancels the in-progress response generation.
func (c *Client) CancelResponse() error {
	return c.sendEvent(map[string]any{
		"event_id": generateEventID(),
		"type":     EventTypeResponseCancel,
	})
}

// SendFunctionResult sends a function call result upstream and requests a
// fresh response; the service expects a new generation after a result.
func (c *Client) SendFunctionResult(callID string, result map[string]any) error {
	output, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("realtime: marshal function result: %w", err)
	}
	err = c.sendEvent(map[string]any{
		"event_id": generateEventID(),
		"type":     EventTypeConversationItemCreate,
		"item": map[string]any{
			"type":    "function_call_output",
			"call_id": callID,
			"output":  string(output),
		},
	})
	if err != nil {
		return err
	}
	return c.RequestResponse()
}

// Events returns an iterator over inbound server events. The sequence is
// per-connection-ordered and ends when the connection closes or errors.
func (c *Client) Events() iter.Seq2[*ServerEvent, error] {
	return func(yield func(*ServerEvent, error) bool) {
		for {
			select {
			case <-c.closeCh:
				return
			case item, ok := <-c.eventsCh:
				if !ok {
					return
				}
				if !yield(item.event, item.err) {
					return
				}
				if item.err != nil {
					return
				}
			}
		}
	}
}

// generateEventID generates a unique client event ID.
func generateEventID() string {
	return "evt_" + uuid.New().String()[:12]
}

// sendEvent sends a JSON event to the server.
func (c *Client) sendEvent(event map[string]any) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.connected || c.conn == nil {
		return ErrNotConnected
	}

	if slog.Default().Enabled(context.Background(), slog.LevelDebug) {
		if jsonBytes, err := json.Marshal(event); err == nil {
			str := string(jsonBytes)
			if len(str) > 500 {
				str = str[:500] + "..."
			}
			slog.Debug("sending event", "content", str)
		}
	}

	return c.conn.WriteJSON(event)
}

// readLoop reads events from the WebSocket connection into eventsCh.
func (c *Client) readLoop(conn *websocket.Conn) {
	defer close(c.eventsCh)

	for {
		select {
		case <-c.closeCh:
			return
		default:
		}

		_, message, err := conn.ReadMessage()
		if err != nil {
			c.mu.Lock()
			c.connected = false
			c.mu.Unlock()
			select {
			case <-c.closeCh:
			case c.eventsCh <- eventOrError{err: fmt.Errorf("realtime: read: %w", err)}:
			}
			return
		}

		if slog.Default().Enabled(context.Background(), slog.LevelDebug) {
			msgStr := string(message)
			if len(msgStr) > 1000 {
				msgStr = msgStr[:1000] + "..."
			}
			slog.Debug("received message", "len", len(message), "content", msgStr)
		}

		var event ServerEvent
		if err := json.Unmarshal(message, &event); err != nil {
			select {
			case <-c.closeCh:
				return
			case c.eventsCh <- eventOrError{err: fmt.Errorf("realtime: parse: %w", err)}:
			}
			continue
		}
		event.Raw = message

		select {
		case <-c.closeCh:
			return
		case c.eventsCh <- eventOrError{event: &event}:
		}
	}
}
