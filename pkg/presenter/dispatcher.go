package presenter

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/kaptinlin/jsonrepair"

	"github.com/voxdeck/voxdeck/pkg/deck"
)

// Function names the model may invoke.
const (
	FuncNavigateToSlide     = "navigate_to_slide"
	FuncGetCurrentSlideInfo = "get_current_slide_info"
	FuncEndPresentation     = "end_presentation"
)

const (
	// narrationHintLen caps the narration excerpt in navigation results.
	narrationHintLen = 200

	defaultNavigateReason = "User requested"
	defaultFarewell       = "Thank you for attending!"
)

// ActionEndPresentation marks an end_presentation result payload.
const ActionEndPresentation = "end_presentation"

// Dispatcher resolves function calls from the model into cursor operations.
// A dispatch never fails: unknown names and malformed arguments degrade to
// error payloads in the result, returned to the model.
type Dispatcher struct {
	cursor *Cursor
}

// NewDispatcher creates a dispatcher bound to the given cursor.
func NewDispatcher(c *Cursor) *Dispatcher {
	return &Dispatcher{cursor: c}
}

// Dispatch handles one function call. It returns the result payload to send
// back upstream, and the new slide when the call changed the cursor so the
// caller can broadcast it. The returned slide is nil for reads and failures.
func (d *Dispatcher) Dispatch(name, arguments string) (map[string]any, *deck.Slide) {
	slog.Info("function call", "name", name)

	switch name {
	case FuncNavigateToSlide:
		return d.navigate(arguments)
	case FuncGetCurrentSlideInfo:
		return d.slideInfo()
	case FuncEndPresentation:
		return d.endPresentation(arguments)
	default:
		slog.Warn("unknown function", "name", name)
		return map[string]any{"error": fmt.Sprintf("Unknown function: %s", name)}, nil
	}
}

type navigateArgs struct {
	SlideID *int   `json:"slide_id"`
	Reason  string `json:"reason"`
}

func (d *Dispatcher) navigate(arguments string) (map[string]any, *deck.Slide) {
	var args navigateArgs
	decodeArgs(arguments, &args)

	if args.SlideID == nil {
		return map[string]any{"error": "slide_id is required"}, nil
	}
	reason := args.Reason
	if reason == "" {
		reason = defaultNavigateReason
	}

	slide, ok := d.cursor.GoToSlide(*args.SlideID)
	if !ok {
		return map[string]any{
			"success": false,
			"error":   fmt.Sprintf("Invalid slide_id: %d", *args.SlideID),
		}, nil
	}
	return map[string]any{
		"success":        true,
		"navigated_to":   slide.ID,
		"title":          slide.Title,
		"reason":         reason,
		"narration_hint": narrationHint(slide.Narration),
	}, slide
}

func (d *Dispatcher) slideInfo() (map[string]any, *deck.Slide) {
	info := d.cursor.Snapshot()
	return map[string]any{
		"slide_id":     info.SlideID,
		"title":        info.Title,
		"content":      info.Content,
		"narration":    info.Narration,
		"total_slides": info.TotalSlides,
		"has_next":     info.HasNext,
		"has_previous": info.HasPrevious,
	}, nil
}

type endPresentationArgs struct {
	FarewellMessage string `json:"farewell_message"`
}

func (d *Dispatcher) endPresentation(arguments string) (map[string]any, *deck.Slide) {
	var args endPresentationArgs
	decodeArgs(arguments, &args)

	farewell := args.FarewellMessage
	if farewell == "" {
		farewell = defaultFarewell
	}
	slog.Info("ending presentation", "farewell", farewell)
	d.cursor.SetPresenting(false)
	return map[string]any{
		"success":  true,
		"action":   ActionEndPresentation,
		"farewell": farewell,
	}, nil
}

// narrationHint truncates narration for the model, always marking the cut.
func narrationHint(narration string) string {
	runes := []rune(narration)
	if len(runes) > narrationHintLen {
		runes = runes[:narrationHintLen]
	}
	return string(runes) + "..."
}

// decodeArgs decodes function-call arguments, attempting to repair
// malformed JSON. Any decode failure degrades to empty arguments instead
// of propagating the parse error.
func decodeArgs(raw string, v any) {
	if raw == "" {
		return
	}
	if err := json.Unmarshal([]byte(raw), v); err == nil {
		return
	}
	fixed, err := jsonrepair.JSONRepair(raw)
	if err != nil {
		slog.Warn("unparseable function arguments", "arguments", raw)
		return
	}
	if err := json.Unmarshal([]byte(fixed), v); err != nil {
		slog.Warn("unparseable function arguments", "arguments", raw)
	}
}
