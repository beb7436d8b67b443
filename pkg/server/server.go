// Package server provides the HTTP and WebSocket front of voxdeck: a thin
// read API over the deck plus the /ws endpoint that runs one session
// bridge per browser connection.
package server

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/voxdeck/voxdeck/pkg/bridge"
	"github.com/voxdeck/voxdeck/pkg/config"
	"github.com/voxdeck/voxdeck/pkg/deck"
	"github.com/voxdeck/voxdeck/pkg/presenter"
	"github.com/voxdeck/voxdeck/pkg/realtime"
)

// Server serves the slide API and presentation sessions.
type Server struct {
	cfg      *config.Config
	deck     *deck.Deck
	upgrader websocket.Upgrader
}

// New creates a Server over the given configuration and deck.
func New(cfg *config.Config, d *deck.Deck) *Server {
	s := &Server{cfg: cfg, deck: d}
	s.upgrader = websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			if origin == "" {
				return true
			}
			for _, allowed := range cfg.CORSOrigins {
				if origin == allowed {
					return true
				}
			}
			return false
		},
	}
	return s
}

// Router builds the HTTP route table.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.corsMiddleware)
	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/api/slides", s.handleSlides).Methods(http.MethodGet)
	r.HandleFunc("/api/slides/{id}", s.handleSlide).Methods(http.MethodGet)
	r.HandleFunc("/ws", s.handleWS)
	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *Server) handleSlides(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.deck.Slides())
}

func (s *Server) handleSlide(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "invalid slide id"})
		return
	}
	slide, ok := s.deck.SlideByID(id)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{
			"detail": fmt.Sprintf("Slide %d not found", id),
		})
		return
	}
	writeJSON(w, http.StatusOK, slide)
}

// handleWS upgrades the connection and runs a session bridge for its
// lifetime. Every connection gets an independent bridge, cursor and
// upstream transport.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()
	slog.Info("client connected", "remote", conn.RemoteAddr())

	upstream := realtime.NewClient(realtime.Config{
		APIKey: s.cfg.OpenAIAPIKey,
		Model:  s.cfg.OpenAIRealtimeModel,
		URL:    s.cfg.OpenAIRealtimeURL,
	})
	b := bridge.New(conn, upstream, s.deck, bridge.Options{
		Session: presenter.SessionOptions{
			Voice:                s.cfg.Voice,
			Temperature:          s.cfg.Temperature,
			VADThreshold:         s.cfg.VADThreshold,
			VADPrefixPaddingMs:   s.cfg.VADPrefixPaddingMs,
			VADSilenceDurationMs: s.cfg.VADSilenceDurationMs,
		},
	})

	if err := b.Run(r.Context()); err != nil {
		slog.Error("session bridge ended", "error", err, "session_id", b.SessionID())
	}
	slog.Info("connection cleaned up", "session_id", b.SessionID())
}

// corsMiddleware answers preflight requests and marks allowed origins.
func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		for _, allowed := range s.cfg.CORSOrigins {
			if origin == allowed {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Credentials", "true")
				break
			}
		}
		if r.Method == http.MethodOptions {
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("write response", "error", err)
	}
}
