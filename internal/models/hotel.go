package models

type Hotel struct {
	Name           string   `json:"name" yaml:"name"`
	Address        string   `json:"address" yaml:"address"`
	Location       string   `json:"location" yaml:"location"`
	Rating         float64  `json:"rating" yaml:"rating"`
	PricePerNight  int      `json:"price_per_night" yaml:"price_per_night"`
	HotelType      string   `json:"hotel_type" yaml:"hotel_type"`
	Amenities      []string `json:"amenities" yaml:"amenities"`
	AvailableRooms int      `json:"available_rooms" yaml:"available_rooms"`
	Phone          string   `json:"phone" yaml:"phone"`
	CheckInTime    string   `json:"check_in_time" yaml:"check_in_time"`
	CheckOutTime   string   `json:"check_out_time" yaml:"check_out_time"`
}

const (
	HotelLuxury   = "Luxury"
	HotelBoutique = "Boutique"
	HotelBudget   = "Budget"
	HotelBusiness = "Business"
	HotelResort   = "Resort"
)
