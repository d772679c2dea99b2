package models

import "time"

type HotelSearchRequest struct {
	Location string `json:"location"`
	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`
}

type FlightSearchRequest struct {
	FromLocation  string  `json:"from_location"`
	ToLocation    string  `json:"to_location"`
	DepartureDate string  `json:"departure_date"`
	ReturnDate    *string `json:"return_date,omitempty"`
}

// HasReturn reports whether a non-empty return date was supplied.
func (r FlightSearchRequest) HasReturn() bool {
	return r.ReturnDate != nil && *r.ReturnDate != ""
}

// FlightLeg is one direction of a flight search, already validated.
type FlightLeg struct {
	From            Airport
	To              Airport
	Date            time.Time
	PriceMultiplier float64
}
