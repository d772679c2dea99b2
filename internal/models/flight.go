package models

import (
	"encoding/json"
	"time"
)

// TimestampLayout renders minute precision with the seconds pinned to zero.
const TimestampLayout = "2006-01-02T15:04:00"

// Timestamp is a wall-clock time without zone, serialized as TimestampLayout.
type Timestamp time.Time

func (t Timestamp) Time() time.Time {
	return time.Time(t)
}

func (t Timestamp) String() string {
	return time.Time(t).Format(TimestampLayout)
}

func (t Timestamp) Add(d time.Duration) Timestamp {
	return Timestamp(time.Time(t).Add(d))
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t Timestamp) MarshalYAML() (any, error) {
	return t.String(), nil
}

type Airport struct {
	Code string `json:"code" yaml:"code"`
	Name string `json:"name" yaml:"name"`
	City string `json:"city" yaml:"city"`
}

type Segment struct {
	FlightNumber string    `json:"flight_number" yaml:"flight_number"`
	From         Airport   `json:"from_airport" yaml:"from_airport"`
	To           Airport   `json:"to_airport" yaml:"to_airport"`
	Departure    Timestamp `json:"departure" yaml:"departure"`
	Arrival      Timestamp `json:"arrival" yaml:"arrival"`
	Duration     int       `json:"duration_minutes" yaml:"duration_minutes"`
	Aircraft     string    `json:"aircraft" yaml:"aircraft"`
}

// Itinerary is one priced flight offer. Arrival and Duration cover flown time
// only; for connecting offers the layover is reported separately in
// ConnectionDuration and folded into TotalDuration.
type Itinerary struct {
	ID                string    `json:"flight_id" yaml:"flight_id"`
	Airline           string    `json:"airline" yaml:"airline"`
	FlightNumber      string    `json:"flight_number" yaml:"flight_number"`
	Aircraft          string    `json:"aircraft" yaml:"aircraft"`
	From              Airport   `json:"from_airport" yaml:"from_airport"`
	To                Airport   `json:"to_airport" yaml:"to_airport"`
	Departure         Timestamp `json:"departure" yaml:"departure"`
	Arrival           Timestamp `json:"arrival" yaml:"arrival"`
	Duration          int       `json:"duration_minutes" yaml:"duration_minutes"`
	DurationFormatted string    `json:"duration_formatted" yaml:"duration_formatted"`
	IsDirect          bool      `json:"is_direct" yaml:"is_direct"`
	Price             float64   `json:"price" yaml:"price"`
	PriceFormatted    string    `json:"price_formatted" yaml:"price_formatted"`
	Currency          string    `json:"currency" yaml:"currency"`
	AvailableSeats    int       `json:"available_seats" yaml:"available_seats"`
	CabinClass        string    `json:"cabin_class" yaml:"cabin_class"`
	BaggageIncluded   bool      `json:"baggage_included" yaml:"baggage_included"`
	MealService       bool      `json:"meal_service" yaml:"meal_service"`

	Segments           []Segment `json:"segments,omitempty" yaml:"segments,omitempty"`
	ConnectionAirport  string    `json:"connection_airport,omitempty" yaml:"connection_airport,omitempty"`
	ConnectionDuration int       `json:"connection_duration_minutes,omitempty" yaml:"connection_duration_minutes,omitempty"`
	TotalDuration      int       `json:"total_duration_minutes,omitempty" yaml:"total_duration_minutes,omitempty"`
}

const (
	TripOneWay    = "one_way"
	TripRoundTrip = "round_trip"
)
