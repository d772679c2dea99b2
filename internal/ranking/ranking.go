package ranking

import (
	"sort"

	"github.com/dharmasatrya/travelassistant/internal/models"
)

// HotelsByRating orders best rated first. Equal ratings keep generation order.
func HotelsByRating(hotels []models.Hotel) []models.Hotel {
	sort.SliceStable(hotels, func(i, j int) bool {
		return hotels[i].Rating > hotels[j].Rating
	})
	return hotels
}

// ItinerariesByPrice orders cheapest first. Equal prices keep generation order.
func ItinerariesByPrice(itineraries []models.Itinerary) []models.Itinerary {
	sort.SliceStable(itineraries, func(i, j int) bool {
		return itineraries[i].Price < itineraries[j].Price
	})
	return itineraries
}
