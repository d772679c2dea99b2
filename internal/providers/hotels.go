package providers

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/dharmasatrya/travelassistant/internal/models"
)

const (
	minHotels        = 3
	maxHotels        = 8
	minAmenities     = 4
	maxAmenities     = 8
	prefixedNameProb = 0.7

	checkInTime  = "15:00"
	checkOutTime = "11:00"
)

var fallbackBand = priceBand{Min: 100, Max: 300}

type SyntheticHotels struct {
	tables  hotelTables
	streets []string
}

func NewSyntheticHotels() (*SyntheticHotels, error) {
	ref, err := loadReference()
	if err != nil {
		return nil, err
	}
	return &SyntheticHotels{tables: ref.Hotels, streets: ref.StreetNames}, nil
}

func (p *SyntheticHotels) Name() string {
	return "synthetic-hotels"
}

// Search returns between 3 and 8 hotels in generation order. Ordering by
// rating is left to the caller.
func (p *SyntheticHotels) Search(rng *rand.Rand, location string) []models.Hotel {
	count := intBetween(rng, minHotels, maxHotels)
	hotels := make([]models.Hotel, 0, count)
	for i := 0; i < count; i++ {
		hotels = append(hotels, p.hotel(rng, location))
	}
	return hotels
}

func (p *SyntheticHotels) hotel(rng *rand.Rand, location string) models.Hotel {
	hotelType := pick(rng, p.tables.Types)
	amenities := sample(rng, p.tables.Amenities, intBetween(rng, minAmenities, maxAmenities))
	neighborhood := pick(rng, p.tables.Neighborhoods)

	var name string
	if rng.Float64() < prefixedNameProb {
		name = pick(rng, p.tables.Prefixes) + " " + pick(rng, p.tables.Suffixes)
	} else {
		name = hotelType + " " + pick(rng, p.tables.Suffixes)
	}

	return models.Hotel{
		Name:           name,
		Address:        p.address(rng),
		Location:       neighborhood + ", " + location,
		Rating:         math.Round(uniform(rng, 3.0, 5.0)*10) / 10,
		PricePerNight:  p.nightlyPrice(rng, hotelType),
		HotelType:      hotelType,
		Amenities:      amenities,
		AvailableRooms: intBetween(rng, 1, 15),
		Phone:          phoneNumber(rng),
		CheckInTime:    checkInTime,
		CheckOutTime:   checkOutTime,
	}
}

func (p *SyntheticHotels) nightlyPrice(rng *rand.Rand, hotelType string) int {
	band, ok := p.tables.PriceBands[hotelType]
	if !ok {
		band = fallbackBand
	}
	return int(math.Round(uniform(rng, band.Min, band.Max)))
}

func (p *SyntheticHotels) address(rng *rand.Rand) string {
	return fmt.Sprintf("%d %s", intBetween(rng, 100, 9998), pick(rng, p.streets))
}

func phoneNumber(rng *rand.Rand) string {
	return fmt.Sprintf("+1-%d-%d-%d", intBetween(rng, 200, 999), intBetween(rng, 200, 999), intBetween(rng, 1000, 9999))
}
