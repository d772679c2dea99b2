package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"gopkg.in/yaml.v3"

	"github.com/dharmasatrya/travelassistant/internal/assistant"
	"github.com/dharmasatrya/travelassistant/internal/models"
	"github.com/dharmasatrya/travelassistant/internal/tools"
)

type SearchHandler struct {
	assistant *assistant.Assistant
	tools     *tools.Registry
}

func NewSearchHandler(a *assistant.Assistant, registry *tools.Registry) *SearchHandler {
	return &SearchHandler{
		assistant: a,
		tools:     registry,
	}
}

func (h *SearchHandler) SuggestHotels(c echo.Context) error {
	var req models.HotelSearchRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, err)
	}

	resp, err := h.assistant.SuggestHotels(c.Request().Context(), req)
	return render(c, statusFor(err), assistant.Envelope(resp, err))
}

func (h *SearchHandler) SuggestFlights(c echo.Context) error {
	var req models.FlightSearchRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, err)
	}

	resp, err := h.assistant.SuggestFlights(c.Request().Context(), req)
	return render(c, statusFor(err), assistant.Envelope(resp, err))
}

func (h *SearchHandler) ListTools(c echo.Context) error {
	return render(c, http.StatusOK, h.tools.List())
}

func (h *SearchHandler) CallTool(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return badRequest(c, err)
	}

	result, err := h.tools.Call(c.Request().Context(), c.Param("name"), body)
	return render(c, statusFor(err), result)
}

func HealthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

func statusFor(err error) int {
	if err == nil {
		return http.StatusOK
	}

	if errors.Is(err, models.ErrUnknownTool) {
		return http.StatusNotFound
	}
	if errors.Is(err, models.ErrInvalidInput) {
		return http.StatusBadRequest
	}

	var searchErr *models.SearchError
	if errors.As(err, &searchErr) && searchErr.Kind != models.KindUnexpected {
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}

// render writes v as JSON, or as YAML when the caller asks for ?format=yaml.
func render(c echo.Context, status int, v any) error {
	if c.QueryParam("format") != "yaml" {
		return c.JSON(status, v)
	}

	out, err := yaml.Marshal(v)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "An unexpected error occurred: " + err.Error(),
		})
	}
	return c.Blob(status, "application/yaml", out)
}

func badRequest(c echo.Context, err error) error {
	return c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error: "Failed to parse request body: " + err.Error(),
	})
}
