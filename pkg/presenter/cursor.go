// Package presenter holds the per-session presentation state and the
// function-call dispatch for the AI presenter.
//
// A Cursor tracks which slide is active for one session, together with the
// presenting and speaking flags. It is owned exclusively by one session
// bridge and is not safe for concurrent use; the bridge serializes all
// access through its event loop.
package presenter

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/voxdeck/voxdeck/pkg/deck"
)

// Cursor is the mutable presentation state of one session.
type Cursor struct {
	sessionID      string
	deck           *deck.Deck
	currentSlideID int
	presenting     bool
	aiSpeaking     bool
}

// SlideInfo is a read-only snapshot of the cursor state.
type SlideInfo struct {
	SlideID     int      `json:"slide_id"`
	Title       string   `json:"title"`
	Content     []string `json:"content"`
	Narration   string   `json:"narration"`
	TotalSlides int      `json:"total_slides"`
	HasNext     bool     `json:"has_next"`
	HasPrevious bool     `json:"has_previous"`
}

// NewCursor creates a cursor positioned on the first slide of the deck,
// with a freshly generated session ID.
func NewCursor(d *deck.Deck) *Cursor {
	return &Cursor{
		sessionID:      uuid.NewString(),
		deck:           d,
		currentSlideID: 1,
	}
}

// SessionID returns the opaque session token.
func (c *Cursor) SessionID() string { return c.sessionID }

// Deck returns the deck this cursor navigates.
func (c *Cursor) Deck() *deck.Deck { return c.deck }

// CurrentSlideID returns the id of the active slide.
func (c *Cursor) CurrentSlideID() int { return c.currentSlideID }

// CurrentSlide returns the active slide.
func (c *Cursor) CurrentSlide() *deck.Slide {
	s, ok := c.deck.SlideByID(c.currentSlideID)
	if !ok {
		// currentSlideID is always kept valid; fall back defensively.
		s, _ = c.deck.SlideByID(1)
	}
	return s
}

// HasNext reports whether a slide follows the current one.
func (c *Cursor) HasNext() bool { return c.currentSlideID < c.deck.Count() }

// HasPrevious reports whether a slide precedes the current one.
func (c *Cursor) HasPrevious() bool { return c.currentSlideID > 1 }

// GoToSlide moves the cursor to the given slide. It returns the slide and
// true on success; out-of-range ids leave the state unchanged.
func (c *Cursor) GoToSlide(id int) (*deck.Slide, bool) {
	s, ok := c.deck.SlideByID(id)
	if !ok {
		slog.Warn("invalid slide id", "slide_id", id)
		return nil, false
	}
	c.currentSlideID = id
	slog.Info("navigated to slide", "slide_id", id, "title", s.Title)
	return s, true
}

// NextSlide advances the cursor by one slide if possible.
func (c *Cursor) NextSlide() (*deck.Slide, bool) {
	if !c.HasNext() {
		return nil, false
	}
	return c.GoToSlide(c.currentSlideID + 1)
}

// PreviousSlide moves the cursor back by one slide if possible.
func (c *Cursor) PreviousSlide() (*deck.Slide, bool) {
	if !c.HasPrevious() {
		return nil, false
	}
	return c.GoToSlide(c.currentSlideID - 1)
}

// Presenting reports whether the presentation is active.
func (c *Cursor) Presenting() bool { return c.presenting }

// SetPresenting sets the presentation-active flag.
func (c *Cursor) SetPresenting(v bool) { c.presenting = v }

// AISpeaking reports whether an AI response is considered in flight.
func (c *Cursor) AISpeaking() bool { return c.aiSpeaking }

// SetAISpeaking sets the AI-speaking flag.
func (c *Cursor) SetAISpeaking(v bool) { c.aiSpeaking = v }

// Snapshot returns the full read-only state of the cursor.
func (c *Cursor) Snapshot() SlideInfo {
	s := c.CurrentSlide()
	return SlideInfo{
		SlideID:     s.ID,
		Title:       s.Title,
		Content:     s.Content,
		Narration:   s.Narration,
		TotalSlides: c.deck.Count(),
		HasNext:     c.HasNext(),
		HasPrevious: c.HasPrevious(),
	}
}
