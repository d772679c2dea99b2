package providers

import (
	"encoding/json"
	"math/rand"

	"github.com/dharmasatrya/travelassistant/internal/models"
	"github.com/dharmasatrya/travelassistant/internal/providers/data"
)

type HotelProvider interface {
	Name() string
	Search(rng *rand.Rand, location string) []models.Hotel
}

type FlightProvider interface {
	Name() string
	Airport(rng *rand.Rand, location string) models.Airport
	Search(rng *rand.Rand, leg models.FlightLeg) []models.Itinerary
}

type priceBand struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type hotelTables struct {
	Types         []string             `json:"types"`
	Suffixes      []string             `json:"suffixes"`
	Prefixes      []string             `json:"prefixes"`
	Amenities     []string             `json:"amenities"`
	Neighborhoods []string             `json:"neighborhoods"`
	PriceBands    map[string]priceBand `json:"price_bands"`
}

type flightTables struct {
	Airlines     []string         `json:"airlines"`
	CarrierCodes []string         `json:"carrier_codes"`
	Aircraft     []string         `json:"aircraft"`
	CabinClasses []string         `json:"cabin_classes"`
	Hubs         []models.Airport `json:"hubs"`
}

type referenceTables struct {
	StreetNames []string     `json:"street_names"`
	Hotels      hotelTables  `json:"hotels"`
	Flights     flightTables `json:"flights"`
}

func loadReference() (referenceTables, error) {
	var ref referenceTables
	if err := json.Unmarshal(data.ReferenceData, &ref); err != nil {
		return referenceTables{}, err
	}
	return ref, nil
}

func intBetween(rng *rand.Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

func pick[T any](rng *rand.Rand, items []T) T {
	return items[rng.Intn(len(items))]
}

// sample draws n distinct items without replacement.
func sample(rng *rand.Rand, items []string, n int) []string {
	if n > len(items) {
		n = len(items)
	}
	shuffled := make([]string, len(items))
	copy(shuffled, items)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled[:n]
}
