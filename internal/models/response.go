package models

type HotelSearchResponse struct {
	Hotels     []Hotel `json:"hotels" yaml:"hotels"`
	TotalFound int     `json:"total_found" yaml:"total_found"`
}

type SearchInfo struct {
	FromLocation          string  `json:"from_location" yaml:"from_location"`
	ToLocation            string  `json:"to_location" yaml:"to_location"`
	DepartureDate         string  `json:"departure_date" yaml:"departure_date"`
	ReturnDate            *string `json:"return_date" yaml:"return_date"`
	TotalDepartureOptions int     `json:"total_departure_options" yaml:"total_departure_options"`
	TotalReturnOptions    int     `json:"total_return_options" yaml:"total_return_options"`
	TripType              string  `json:"trip_type" yaml:"trip_type"`
}

type FlightSearchResponse struct {
	DepartureFlights []Itinerary `json:"departure_flights" yaml:"departure_flights"`
	ReturnFlights    []Itinerary `json:"return_flights" yaml:"return_flights"`
	SearchInfo       SearchInfo  `json:"search_info" yaml:"search_info"`
}

// ErrorResponse is the failure side of every envelope. It never carries
// success keys.
type ErrorResponse struct {
	Error string `json:"error" yaml:"error"`
}
