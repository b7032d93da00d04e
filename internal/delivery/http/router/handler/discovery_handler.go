package handler

import (
	"net/http"
	"strconv"

	"mazza/internal/delivery/http/response"
	"mazza/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DiscoveryHandler holds dependencies for the nearby-store search.
type DiscoveryHandler struct {
	uc usecase.DiscoveryUsecase
}

// NewDiscoveryHandler is the constructor for DiscoveryHandler, injected by Fx.
func NewDiscoveryHandler(uc usecase.DiscoveryUsecase) *DiscoveryHandler {
	return &DiscoveryHandler{uc: uc}
}

// FindNearby handles the nearby-store search request.
// Query parameters: lat, lng (required), limit, open_only (optional).
func (h *DiscoveryHandler) FindNearby(c echo.Context) error {
	lat, err := strconv.ParseFloat(c.QueryParam("lat"), 64)
	if err != nil {
		return response.BindingError(c, "Query parameter 'lat' must be a number")
	}

	lng, err := strconv.ParseFloat(c.QueryParam("lng"), 64)
	if err != nil {
		return response.BindingError(c, "Query parameter 'lng' must be a number")
	}

	input := &usecase.FindNearbyInput{
		Latitude:  lat,
		Longitude: lng,
	}

	if raw := c.QueryParam("limit"); raw != "" {
		limit, parseErr := strconv.Atoi(raw)
		if parseErr != nil || limit < 0 {
			return response.BindingError(c, "Query parameter 'limit' must be a non-negative integer")
		}
		input.Limit = limit
	}

	if raw := c.QueryParam("open_only"); raw != "" {
		openOnly, parseErr := strconv.ParseBool(raw)
		if parseErr != nil {
			return response.BindingError(c, "Query parameter 'open_only' must be a boolean")
		}
		input.OpenOnly = openOnly
	}

	result, err := h.uc.FindNearby(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result)
}
