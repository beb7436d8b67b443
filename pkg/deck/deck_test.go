package deck

import (
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	d := Default()
	if d.Count() != 5 {
		t.Fatalf("Count() = %d, want 5", d.Count())
	}
	for i, s := range d.Slides() {
		if s.ID != i+1 {
			t.Errorf("slide %d has id %d", i, s.ID)
		}
		if s.Title == "" || s.Narration == "" {
			t.Errorf("slide %d has empty title or narration", s.ID)
		}
	}
}

func TestSlideByID(t *testing.T) {
	d := Default()

	tests := []struct {
		id   int
		want bool
	}{
		{0, false},
		{1, true},
		{3, true},
		{5, true},
		{6, false},
		{-1, false},
	}

	for _, tc := range tests {
		s, ok := d.SlideByID(tc.id)
		if ok != tc.want {
			t.Errorf("SlideByID(%d) ok = %v, want %v", tc.id, ok, tc.want)
			continue
		}
		if ok && s.ID != tc.id {
			t.Errorf("SlideByID(%d) returned slide %d", tc.id, s.ID)
		}
	}
}

func TestSummaries(t *testing.T) {
	d := Default()
	got := d.Summaries()

	lines := strings.Split(got, "\n")
	if len(lines) != d.Count() {
		t.Fatalf("Summaries() has %d lines, want %d", len(lines), d.Count())
	}
	if !strings.HasPrefix(lines[0], "Slide 1: ") {
		t.Errorf("first summary line = %q", lines[0])
	}
	if !strings.Contains(got, "Slide 3: Real-World Applications") {
		t.Errorf("Summaries() missing slide 3 title:\n%s", got)
	}
}

func TestParse(t *testing.T) {
	data := []byte(`slides:
  - id: 1
    title: Intro
    content:
      - Point one
      - Point two
    narration: Welcome to the talk.
  - id: 2
    title: Wrap-up
    narration: Thanks for listening.
`)

	d, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if d.Count() != 2 {
		t.Fatalf("Count() = %d, want 2", d.Count())
	}
	s, ok := d.SlideByID(1)
	if !ok {
		t.Fatal("SlideByID(1) not found")
	}
	if s.Title != "Intro" || len(s.Content) != 2 {
		t.Errorf("slide 1 = %+v", s)
	}
	s2, _ := d.SlideByID(2)
	if len(s2.Content) != 0 {
		t.Errorf("slide 2 content = %v, want empty", s2.Content)
	}
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name   string
		slides []Slide
	}{
		{"empty", nil},
		{"sparse ids", []Slide{
			{ID: 1, Title: "a", Narration: "n"},
			{ID: 3, Title: "b", Narration: "n"},
		}},
		{"zero based", []Slide{{ID: 0, Title: "a", Narration: "n"}}},
		{"missing title", []Slide{{ID: 1, Narration: "n"}}},
		{"missing narration", []Slide{{ID: 1, Title: "a"}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := New(tc.slides); err == nil {
				t.Errorf("New(%v) succeeded, want error", tc.slides)
			}
		})
	}
}
