package providers

import (
	"math/rand"
	"strings"

	"github.com/dharmasatrya/travelassistant/internal/models"
)

const (
	vowels        = "AEIOU"
	consonants    = "BCDFGHJKLMNPQRSTVWXYZ"
	consonantProb = 0.6
)

// AirportCode derives a three letter code from the first letters of location.
// Locations with fewer than three ASCII letters keep their first letter (or a
// random consonant when there is none) and get two random letters appended.
func AirportCode(rng *rand.Rand, location string) string {
	var letters []byte
	for _, r := range strings.ToUpper(location) {
		if r >= 'A' && r <= 'Z' {
			letters = append(letters, byte(r))
		}
	}

	if len(letters) >= 3 {
		return string(letters[:3])
	}

	code := make([]byte, 0, 3)
	if len(letters) > 0 {
		code = append(code, letters[0])
	} else {
		code = append(code, consonants[rng.Intn(len(consonants))])
	}

	for len(code) < 3 {
		if rng.Float64() < consonantProb {
			code = append(code, consonants[rng.Intn(len(consonants))])
		} else {
			code = append(code, vowels[rng.Intn(len(vowels))])
		}
	}

	return string(code)
}

func NewAirport(rng *rand.Rand, location string) models.Airport {
	return models.Airport{
		Code: AirportCode(rng, location),
		Name: location + " International Airport",
		City: location,
	}
}
