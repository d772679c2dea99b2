package handler

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dharmasatrya/travelassistant/internal/models"
	"github.com/dharmasatrya/travelassistant/internal/ratelimit"
	"github.com/dharmasatrya/travelassistant/internal/tools"
)

// restOperations names the tool behind each REST route so both surfaces draw
// from the same bucket.
var restOperations = map[string]string{
	"/api/v1/hotels/suggest":  tools.SuggestHotels,
	"/api/v1/flights/suggest": tools.SuggestFlights,
}

// RateLimit refuses calls once the client has used up its allowance for the
// operation. A limiter that cannot answer lets the call through.
func RateLimit(limiter ratelimit.Limiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := ratelimit.Key(operationKey(c), c.RealIP())

			allowed, err := limiter.Allow(c.Request().Context(), key)
			if err != nil {
				log.Printf("Rate limiter unavailable for %s: %v", key, err)
				return next(c)
			}
			if !allowed {
				return c.JSON(http.StatusTooManyRequests, models.ErrorResponse{
					Error: models.ErrRateLimited.Error(),
				})
			}

			return next(c)
		}
	}
}

func operationKey(c echo.Context) string {
	if name := c.Param("name"); name != "" {
		return name
	}
	if operation, ok := restOperations[c.Path()]; ok {
		return operation
	}
	return c.Path()
}
