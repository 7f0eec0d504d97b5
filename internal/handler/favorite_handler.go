package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Sameer222006/flatfinder/internal/errors"
	"github.com/Sameer222006/flatfinder/internal/service"
)

// FavoriteHandler handles saved-property endpoints.
type FavoriteHandler struct {
	favoriteService service.FavoriteService
}

// NewFavoriteHandler creates a new favorite handler.
func NewFavoriteHandler(favoriteService service.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{favoriteService: favoriteService}
}

// AddFavoriteRequest names the property to save.
type AddFavoriteRequest struct {
	PropertyID uint `json:"propertyId" validate:"required"`
}

// Add godoc
// @Summary Save a property; repeating the call is a no-op
// @Tags favorites
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AddFavoriteRequest true "Property to save"
// @Success 201 {object} model.Favorite
// @Failure 404 {object} errors.ErrorResponse
// @Router /favorites [post]
func (h *FavoriteHandler) Add(c echo.Context) error {
	claims, ok := currentClaims(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	var req AddFavoriteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	favorite, err := h.favoriteService.Add(c.Request().Context(), claims.UserID, req.PropertyID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, favorite)
}

// Remove godoc
// @Summary Unsave a property; absent rows are ignored
// @Tags favorites
// @Security BearerAuth
// @Param propertyId path int true "Property ID"
// @Success 204
// @Router /favorites/{propertyId} [delete]
func (h *FavoriteHandler) Remove(c echo.Context) error {
	claims, ok := currentClaims(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	id, err := idParam(c, "propertyId")
	if err != nil {
		return err
	}

	if err := h.favoriteService.Remove(c.Request().Context(), claims.UserID, id); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.NoContent(http.StatusNoContent)
}

// List godoc
// @Summary List the caller's saved properties, newest first
// @Tags favorites
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.PropertyDetails
// @Router /favorites [get]
func (h *FavoriteHandler) List(c echo.Context) error {
	claims, ok := currentClaims(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	properties, err := h.favoriteService.List(c.Request().Context(), claims.UserID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, properties)
}
