package tools

import (
	"github.com/dharmasatrya/travelassistant/internal/assistant"
	"github.com/dharmasatrya/travelassistant/internal/models"
)

const (
	SuggestHotels  = "suggest_hotels"
	SuggestFlights = "suggest_flights"
)

var errUnknownTool = models.ErrUnknownTool

func hotelSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"location": map[string]any{
				"type":        "string",
				"description": "Location (city or area) to search for hotels",
			},
			"check_in": map[string]any{
				"type":        "string",
				"description": "Check-in date in ISO format (YYYY-MM-DD)",
			},
			"check_out": map[string]any{
				"type":        "string",
				"description": "Check-out date in ISO format (YYYY-MM-DD)",
			},
		},
		"required": []string{"location", "check_in", "check_out"},
	}
}

func flightSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"from_location": map[string]any{
				"type":        "string",
				"description": "Departure location (city or airport)",
			},
			"to_location": map[string]any{
				"type":        "string",
				"description": "Destination location (city or airport)",
			},
			"departure_date": map[string]any{
				"type":        "string",
				"description": "Departure date in ISO format (YYYY-MM-DD)",
			},
			"return_date": map[string]any{
				"type":        []string{"string", "null"},
				"description": "Return date in ISO format (YYYY-MM-DD)",
			},
		},
		"required": []string{"from_location", "to_location", "departure_date"},
	}
}

// NewTravelRegistry exposes the assistant's two operations.
func NewTravelRegistry(a *assistant.Assistant) (*Registry, error) {
	hotels, err := New(SuggestHotels, "Suggest hotels based on location and dates.", hotelSchema(), a.SuggestHotels)
	if err != nil {
		return nil, err
	}

	flights, err := New(SuggestFlights, "Suggest flights based on locations and dates.", flightSchema(), a.SuggestFlights)
	if err != nil {
		return nil, err
	}

	return NewRegistry(hotels, flights)
}
