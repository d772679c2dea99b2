package providers

import (
	"math/rand"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dharmasatrya/travelassistant/internal/models"
)

var (
	phonePattern   = regexp.MustCompile(`^\+1-[2-9]\d{2}-[2-9]\d{2}-\d{4}$`)
	addressPattern = regexp.MustCompile(`^\d{3,4} [A-Z][A-Za-z ]+$`)
)

func TestSyntheticHotelsSearch(t *testing.T) {
	p, err := NewSyntheticHotels()
	require.NoError(t, err)
	assert.Equal(t, "synthetic-hotels", p.Name())

	for seed := int64(0); seed < 200; seed++ {
		rng := rand.New(rand.NewSource(seed))
		hotels := p.Search(rng, "Paris")

		require.GreaterOrEqual(t, len(hotels), 3)
		require.LessOrEqual(t, len(hotels), 8)

		for _, h := range hotels {
			assert.GreaterOrEqual(t, h.Rating, 3.0)
			assert.LessOrEqual(t, h.Rating, 5.0)
			assert.InDelta(t, h.Rating, float64(int(h.Rating*10+0.5))/10, 1e-9)

			assert.True(t, strings.HasSuffix(h.Location, ", Paris"), h.Location)
			assert.Contains(t, p.tables.Types, h.HotelType)

			band := p.tables.PriceBands[h.HotelType]
			assert.GreaterOrEqual(t, float64(h.PricePerNight), band.Min)
			assert.LessOrEqual(t, float64(h.PricePerNight), band.Max)

			assert.GreaterOrEqual(t, len(h.Amenities), 4)
			assert.LessOrEqual(t, len(h.Amenities), 8)
			seen := map[string]bool{}
			for _, a := range h.Amenities {
				assert.False(t, seen[a], "duplicate amenity %q", a)
				seen[a] = true
				assert.Contains(t, p.tables.Amenities, a)
			}

			assert.GreaterOrEqual(t, h.AvailableRooms, 1)
			assert.LessOrEqual(t, h.AvailableRooms, 15)
			assert.Regexp(t, phonePattern, h.Phone)
			assert.Regexp(t, addressPattern, h.Address)
			assert.Equal(t, "15:00", h.CheckInTime)
			assert.Equal(t, "11:00", h.CheckOutTime)

			parts := strings.SplitN(h.Name, " ", 2)
			require.Len(t, parts, 2)
			assert.Contains(t, p.tables.Suffixes, parts[1])
			if !contains(p.tables.Prefixes, parts[0]) {
				assert.Equal(t, h.HotelType, parts[0])
			}
		}
	}
}

func TestSyntheticHotelsAmenitiesNotShared(t *testing.T) {
	p, err := NewSyntheticHotels()
	require.NoError(t, err)

	hotels := p.Search(rand.New(rand.NewSource(7)), "Lisbon")
	require.NotEmpty(t, hotels)

	original := append([]string(nil), p.tables.Amenities...)
	hotels[0].Amenities[0] = "mutated"
	assert.Equal(t, original, p.tables.Amenities)
}

func TestNightlyPriceFallbackBand(t *testing.T) {
	p, err := NewSyntheticHotels()
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 100; i++ {
		price := p.nightlyPrice(rng, "Hostel")
		assert.GreaterOrEqual(t, price, 100)
		assert.LessOrEqual(t, price, 300)
	}
}

func TestSample(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	pool := []string{"a", "b", "c"}

	assert.Len(t, sample(rng, pool, 2), 2)
	assert.ElementsMatch(t, pool, sample(rng, pool, 10))
	assert.Equal(t, []string{"a", "b", "c"}, pool)
}

func TestPriceBandsCoverEveryType(t *testing.T) {
	p, err := NewSyntheticHotels()
	require.NoError(t, err)

	for _, typ := range []string{models.HotelLuxury, models.HotelBoutique, models.HotelBudget, models.HotelBusiness, models.HotelResort} {
		assert.Contains(t, p.tables.Types, typ)
		_, ok := p.tables.PriceBands[typ]
		assert.True(t, ok, typ)
	}
	assert.Equal(t, priceBand{Min: 250, Max: 600}, p.tables.PriceBands[models.HotelLuxury])
	assert.Equal(t, priceBand{Min: 80, Max: 150}, p.tables.PriceBands[models.HotelBudget])
}

func contains(items []string, v string) bool {
	for _, item := range items {
		if item == v {
			return true
		}
	}
	return false
}
