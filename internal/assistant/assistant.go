package assistant

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"

	"github.com/dharmasatrya/travelassistant/internal/dates"
	"github.com/dharmasatrya/travelassistant/internal/models"
	"github.com/dharmasatrya/travelassistant/internal/providers"
	"github.com/dharmasatrya/travelassistant/internal/ranking"
)

const (
	outboundPriceMultiplier = 1.0
	returnPriceMultiplier   = 0.9
)

type Config struct {
	// NewRand supplies the random source for a single request. Sources are
	// never shared between requests.
	NewRand func() *rand.Rand
}

func DefaultConfig() Config {
	return Config{
		NewRand: func() *rand.Rand {
			return rand.New(rand.NewSource(rand.Int63()))
		},
	}
}

type Assistant struct {
	hotels  providers.HotelProvider
	flights providers.FlightProvider
	config  Config
}

func NewAssistant(hotels providers.HotelProvider, flights providers.FlightProvider, config Config) *Assistant {
	if config.NewRand == nil {
		config.NewRand = DefaultConfig().NewRand
	}
	return &Assistant{
		hotels:  hotels,
		flights: flights,
		config:  config,
	}
}

func (a *Assistant) SuggestHotels(ctx context.Context, req models.HotelSearchRequest) (resp *models.HotelSearchResponse, err error) {
	defer recoverUnexpected("suggest_hotels", &err)

	checkIn, err := dates.Validate(req.CheckIn, "check_in")
	if err != nil {
		return nil, err
	}
	checkOut, err := dates.Validate(req.CheckOut, "check_out")
	if err != nil {
		return nil, err
	}
	if err := dates.ValidateRange(checkIn, checkOut, "check_in", "check_out"); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, abandoned(err)
	}

	hotels := ranking.HotelsByRating(a.hotels.Search(a.config.NewRand(), req.Location))

	return &models.HotelSearchResponse{
		Hotels:     hotels,
		TotalFound: len(hotels),
	}, nil
}

func (a *Assistant) SuggestFlights(ctx context.Context, req models.FlightSearchRequest) (resp *models.FlightSearchResponse, err error) {
	defer recoverUnexpected("suggest_flights", &err)

	departureDay, err := dates.Validate(req.DepartureDate, "departure_date")
	if err != nil {
		return nil, err
	}

	outbound := models.FlightLeg{Date: departureDay, PriceMultiplier: outboundPriceMultiplier}
	var inbound *models.FlightLeg
	if req.HasReturn() {
		returnDay, err := dates.Validate(*req.ReturnDate, "return_date")
		if err != nil {
			return nil, err
		}
		if err := dates.ValidateRange(departureDay, returnDay, "departure_date", "return_date"); err != nil {
			return nil, err
		}
		inbound = &models.FlightLeg{Date: returnDay, PriceMultiplier: returnPriceMultiplier}
	}

	if err := ctx.Err(); err != nil {
		return nil, abandoned(err)
	}

	rng := a.config.NewRand()
	outbound.From = a.flights.Airport(rng, req.FromLocation)
	outbound.To = a.flights.Airport(rng, req.ToLocation)

	var departureFlights, returnFlights []models.Itinerary
	if inbound == nil {
		departureFlights = a.flights.Search(rng, outbound)
	} else {
		inbound.From, inbound.To = outbound.To, outbound.From
		departureFlights, returnFlights, err = a.searchRoundTrip(ctx, rng, outbound, *inbound)
		if err != nil {
			return nil, err
		}
	}

	departureFlights = ranking.ItinerariesByPrice(departureFlights)
	returnFlights = ranking.ItinerariesByPrice(returnFlights)
	if returnFlights == nil {
		returnFlights = []models.Itinerary{}
	}

	tripType := models.TripOneWay
	if inbound != nil {
		tripType = models.TripRoundTrip
	}

	return &models.FlightSearchResponse{
		DepartureFlights: departureFlights,
		ReturnFlights:    returnFlights,
		SearchInfo: models.SearchInfo{
			FromLocation:          req.FromLocation,
			ToLocation:            req.ToLocation,
			DepartureDate:         req.DepartureDate,
			ReturnDate:            req.ReturnDate,
			TotalDepartureOptions: len(departureFlights),
			TotalReturnOptions:    len(returnFlights),
			TripType:              tripType,
		},
	}, nil
}

// searchRoundTrip generates both directions concurrently. Each direction gets
// its own source derived from rng so the request stays reproducible under a
// seeded source.
func (a *Assistant) searchRoundTrip(ctx context.Context, rng *rand.Rand, outbound, inbound models.FlightLeg) ([]models.Itinerary, []models.Itinerary, error) {
	type legResult struct {
		itineraries []models.Itinerary
		err         error
		isReturn    bool
	}

	outboundRng := rand.New(rand.NewSource(rng.Int63()))
	inboundRng := rand.New(rand.NewSource(rng.Int63()))

	resultCh := make(chan legResult, 2)
	search := func(rng *rand.Rand, leg models.FlightLeg, isReturn bool) {
		var res legResult
		res.isReturn = isReturn
		defer func() {
			if r := recover(); r != nil {
				res.err = unexpected("suggest_flights", r)
			}
			resultCh <- res
		}()
		res.itineraries = a.flights.Search(rng, leg)
	}

	go search(outboundRng, outbound, false)
	go search(inboundRng, inbound, true)

	var departureFlights, returnFlights []models.Itinerary
	for i := 0; i < 2; i++ {
		var res legResult
		select {
		case res = <-resultCh:
		case <-ctx.Done():
			return nil, nil, abandoned(ctx.Err())
		}
		if res.err != nil {
			return nil, nil, res.err
		}
		if res.isReturn {
			returnFlights = res.itineraries
		} else {
			departureFlights = res.itineraries
		}
	}

	return departureFlights, returnFlights, nil
}

// Envelope reduces a result and error pair to exactly one of the two wire
// shapes: the success payload or {"error": message}.
func Envelope[T any](result *T, err error) any {
	if err != nil {
		return models.ErrorResponse{Error: Message(err)}
	}
	return result
}

func Message(err error) string {
	var searchErr *models.SearchError
	if errors.As(err, &searchErr) {
		return searchErr.Message
	}
	return "An unexpected error occurred: " + err.Error()
}

func recoverUnexpected(op string, err *error) {
	if r := recover(); r != nil {
		*err = unexpected(op, r)
	}
}

// abandoned reports a request whose caller went away before it finished.
func abandoned(err error) error {
	return models.NewSearchError(models.KindUnexpected, "", "An unexpected error occurred: "+err.Error(), err)
}

func unexpected(op string, r any) error {
	log.Printf("%s: recovered from panic: %v", op, r)
	cause, ok := r.(error)
	if !ok {
		cause = fmt.Errorf("%v", r)
	}
	return models.NewSearchError(models.KindUnexpected, "", "An unexpected error occurred: "+cause.Error(), cause)
}
