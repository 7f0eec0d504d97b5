package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Sameer222006/flatfinder/internal/errors"
	"github.com/Sameer222006/flatfinder/internal/service"
)

// AmenityHandler handles the amenity catalog endpoint.
type AmenityHandler struct {
	amenityService service.AmenityService
}

// NewAmenityHandler creates a new amenity handler.
func NewAmenityHandler(amenityService service.AmenityService) *AmenityHandler {
	return &AmenityHandler{amenityService: amenityService}
}

// List godoc
// @Summary List all amenities
// @Tags amenities
// @Produce json
// @Success 200 {array} model.Amenity
// @Router /amenities [get]
func (h *AmenityHandler) List(c echo.Context) error {
	amenities, err := h.amenityService.List(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, amenities)
}
