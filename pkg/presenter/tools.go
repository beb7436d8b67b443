package presenter

import (
	"github.com/google/jsonschema-go/jsonschema"

	"github.com/voxdeck/voxdeck/pkg/deck"
	"github.com/voxdeck/voxdeck/pkg/realtime"
)

// Tools returns the function registry exposed to the model for a deck.
func Tools(d *deck.Deck) []realtime.Tool {
	return []realtime.Tool{
		{
			Type: "function",
			Name: FuncNavigateToSlide,
			Description: "Navigate to a specific slide when the user asks about a topic. " +
				"Use this when the user's question relates to content on a different slide.",
			Parameters: &jsonschema.Schema{
				Type: "object",
				Properties: map[string]*jsonschema.Schema{
					"slide_id": {
						Type:        "integer",
						Description: "The slide number to navigate to",
						Minimum:     float64Ptr(1),
						Maximum:     float64Ptr(float64(d.Count())),
					},
					"reason": {
						Type:        "string",
						Description: "Brief reason for navigating to this slide",
					},
				},
				Required: []string{"slide_id"},
			},
		},
		{
			Type:        "function",
			Name:        FuncGetCurrentSlideInfo,
			Description: "Get information about the current slide being displayed.",
			Parameters: &jsonschema.Schema{
				Type:       "object",
				Properties: map[string]*jsonschema.Schema{},
			},
		},
		{
			Type: "function",
			Name: FuncEndPresentation,
			Description: "End the presentation session. Call this when the user indicates they are done, " +
				"says goodbye, thanks you, or declines to ask more questions after you offer.",
			Parameters: &jsonschema.Schema{
				Type: "object",
				Properties: map[string]*jsonschema.Schema{
					"farewell_message": {
						Type:        "string",
						Description: "A brief farewell message to say before ending",
					},
				},
			},
		},
	}
}

func float64Ptr(v float64) *float64 { return &v }
