package providers

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dharmasatrya/travelassistant/internal/dates"
	"github.com/dharmasatrya/travelassistant/internal/models"
	"github.com/dharmasatrya/travelassistant/pkg/currency"
)

const (
	minItineraries = 4
	maxItineraries = 8

	earliestDepartureHour = 5
	latestDepartureHour   = 23

	minFlightMinutes = 90
	maxFlightMinutes = 600
	mealMinMinutes   = 180

	directProb = 0.65

	minBasePrice = 150
	maxBasePrice = 800

	minConnectionMinutes = 60
	maxConnectionMinutes = 240
	minFirstLegShare     = 0.4
	maxFirstLegShare     = 0.6
)

var departureMinutes = []int{0, 15, 30, 45}

type SyntheticFlights struct {
	tables flightTables
}

func NewSyntheticFlights() (*SyntheticFlights, error) {
	ref, err := loadReference()
	if err != nil {
		return nil, err
	}
	return &SyntheticFlights{tables: ref.Flights}, nil
}

func (p *SyntheticFlights) Name() string {
	return "synthetic-flights"
}

func (p *SyntheticFlights) Airport(rng *rand.Rand, location string) models.Airport {
	return NewAirport(rng, location)
}

// Search builds between 4 and 8 itineraries for one direction of travel.
// Results are in generation order.
func (p *SyntheticFlights) Search(rng *rand.Rand, leg models.FlightLeg) []models.Itinerary {
	count := intBetween(rng, minItineraries, maxItineraries)
	itineraries := make([]models.Itinerary, 0, count)
	for i := 0; i < count; i++ {
		itineraries = append(itineraries, p.BuildItinerary(rng, leg.From, leg.To, leg.Date, leg.PriceMultiplier))
	}
	return itineraries
}

func (p *SyntheticFlights) BuildItinerary(rng *rand.Rand, from, to models.Airport, day time.Time, priceMultiplier float64) models.Itinerary {
	departure := dates.At(day, intBetween(rng, earliestDepartureHour, latestDepartureHour), pick(rng, departureMinutes))
	flightMinutes := intBetween(rng, minFlightMinutes, maxFlightMinutes)
	arrival := departure.Add(dates.Minutes(flightMinutes))

	isDirect := rng.Float64() < directProb
	price := math.Round(uniform(rng, minBasePrice, maxBasePrice)*priceMultiplier*100) / 100

	itinerary := models.Itinerary{
		ID:                itineraryID(rng),
		Airline:           pick(rng, p.tables.Airlines),
		FlightNumber:      p.flightNumber(rng),
		Aircraft:          pick(rng, p.tables.Aircraft),
		From:              from,
		To:                to,
		Departure:         departure,
		Arrival:           arrival,
		Duration:          flightMinutes,
		DurationFormatted: dates.FormatDuration(flightMinutes),
		IsDirect:          isDirect,
		Price:             price,
		PriceFormatted:    currency.FormatUSD(price),
		Currency:          currency.USD,
		AvailableSeats:    intBetween(rng, 1, 35),
		CabinClass:        pick(rng, p.tables.CabinClasses),
		BaggageIncluded:   rng.Intn(2) == 0,
	}
	if flightMinutes > mealMinMinutes {
		itinerary.MealService = rng.Intn(2) == 0
	}

	if !isDirect {
		p.connect(rng, &itinerary)
	}

	return itinerary
}

// connect splits the flown time across two segments meeting at a hub. The
// layover pushes the second departure back but leaves the itinerary's own
// arrival and duration untouched.
func (p *SyntheticFlights) connect(rng *rand.Rand, it *models.Itinerary) {
	hub := pick(rng, p.tables.Hubs)

	firstMinutes := int(math.Round(float64(it.Duration) * uniform(rng, minFirstLegShare, maxFirstLegShare)))
	secondMinutes := it.Duration - firstMinutes
	layover := intBetween(rng, minConnectionMinutes, maxConnectionMinutes)

	firstArrival := it.Departure.Add(dates.Minutes(firstMinutes))
	secondDeparture := firstArrival.Add(dates.Minutes(layover))

	it.Segments = []models.Segment{
		{
			FlightNumber: p.flightNumber(rng),
			From:         it.From,
			To:           hub,
			Departure:    it.Departure,
			Arrival:      firstArrival,
			Duration:     firstMinutes,
			Aircraft:     pick(rng, p.tables.Aircraft),
		},
		{
			FlightNumber: p.flightNumber(rng),
			From:         hub,
			To:           it.To,
			Departure:    secondDeparture,
			Arrival:      it.Arrival,
			Duration:     secondMinutes,
			Aircraft:     pick(rng, p.tables.Aircraft),
		},
	}
	it.ConnectionAirport = hub.Code
	it.ConnectionDuration = layover
	it.TotalDuration = it.Duration + layover
}

func (p *SyntheticFlights) flightNumber(rng *rand.Rand) string {
	return fmt.Sprintf("%s%d", pick(rng, p.tables.CarrierCodes), intBetween(rng, 100, 9999))
}

func itineraryID(rng *rand.Rand) string {
	id, err := uuid.NewRandomFromReader(rng)
	if err != nil {
		id = uuid.New()
	}
	return strings.ToUpper(id.String()[:8])
}
