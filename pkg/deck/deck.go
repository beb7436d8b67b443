// Package deck provides the immutable slide catalogue for a presentation.
//
// A Deck is constructed once at process start, either from the built-in
// default presentation or from a YAML file, and is never mutated afterwards.
// All lookups are safe for concurrent use.
package deck

import (
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
)

// Slide is a single presentation slide.
type Slide struct {
	// ID is the 1-based slide number. IDs are dense: 1..N.
	ID int `yaml:"id" json:"id"`

	// Title is the slide heading.
	Title string `yaml:"title" json:"title"`

	// Content holds the bullet points shown on the slide. May be empty.
	Content []string `yaml:"content" json:"content"`

	// Narration is the script the AI presenter speaks for this slide.
	Narration string `yaml:"narration" json:"narration"`
}

// Deck is an ordered, immutable catalogue of slides.
type Deck struct {
	slides []Slide
}

// New builds a Deck from the given slides after validating them.
// Slides must have dense 1..N ids in order, non-empty titles and narration.
func New(slides []Slide) (*Deck, error) {
	if len(slides) == 0 {
		return nil, fmt.Errorf("deck: no slides")
	}
	for i, s := range slides {
		if s.ID != i+1 {
			return nil, fmt.Errorf("deck: slide %d has id %d, want %d", i, s.ID, i+1)
		}
		if s.Title == "" {
			return nil, fmt.Errorf("deck: slide %d has empty title", s.ID)
		}
		if s.Narration == "" {
			return nil, fmt.Errorf("deck: slide %d has empty narration", s.ID)
		}
	}
	return &Deck{slides: slides}, nil
}

// deckFile is the YAML layout of a deck file.
type deckFile struct {
	Slides []Slide `yaml:"slides"`
}

// Parse parses a YAML deck document.
func Parse(data []byte) (*Deck, error) {
	var f deckFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("deck: parse: %w", err)
	}
	return New(f.Slides)
}

// Load reads and parses a YAML deck file.
func Load(path string) (*Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("deck: read %s: %w", path, err)
	}
	return Parse(data)
}

// SlideByID returns the slide with the given id, or false if out of range.
func (d *Deck) SlideByID(id int) (*Slide, bool) {
	if id < 1 || id > len(d.slides) {
		return nil, false
	}
	return &d.slides[id-1], true
}

// Count returns the number of slides in the deck.
func (d *Deck) Count() int {
	return len(d.slides)
}

// Slides returns all slides in order. The returned slice must not be modified.
func (d *Deck) Slides() []Slide {
	return d.slides
}

// Summaries returns a one-line-per-slide summary of the deck,
// suitable for embedding in the presenter system prompt.
func (d *Deck) Summaries() string {
	var b strings.Builder
	for i, s := range d.slides {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "Slide %d: %s", s.ID, s.Title)
	}
	return b.String()
}
