package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/Sameer222006/flatfinder/internal/errors"
	"github.com/Sameer222006/flatfinder/internal/model"
	"github.com/Sameer222006/flatfinder/internal/service"
)

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
)

// PropertyHandler handles listing endpoints.
type PropertyHandler struct {
	propertyService service.PropertyService
}

// NewPropertyHandler creates a new property handler.
func NewPropertyHandler(propertyService service.PropertyService) *PropertyHandler {
	return &PropertyHandler{propertyService: propertyService}
}

// CreatePropertyRequest represents a new listing payload. Decimal fields
// accept JSON numbers or strings.
type CreatePropertyRequest struct {
	Title       string          `json:"title" validate:"required,min=5"`
	Description string          `json:"description" validate:"required,min=20"`
	Type        string          `json:"type" validate:"required"`
	Address     string          `json:"address" validate:"required"`
	City        string          `json:"city" validate:"required"`
	State       string          `json:"state" validate:"required"`
	ZipCode     string          `json:"zipCode" validate:"required"`
	Price       decimal.Decimal `json:"price"`
	Bedrooms    int             `json:"bedrooms" validate:"min=0"`
	Bathrooms   decimal.Decimal `json:"bathrooms"`
	Area        int             `json:"area" validate:"required,gt=0"`
	Available   *bool           `json:"available"`
	Latitude    decimal.Decimal `json:"latitude"`
	Longitude   decimal.Decimal `json:"longitude"`
	Amenities   []uint          `json:"amenities"`
}

// UpdatePropertyRequest carries partial listing updates.
type UpdatePropertyRequest struct {
	Title       *string          `json:"title" validate:"omitempty,min=5"`
	Description *string          `json:"description" validate:"omitempty,min=20"`
	Type        *string          `json:"type"`
	Address     *string          `json:"address"`
	City        *string          `json:"city"`
	State       *string          `json:"state"`
	ZipCode     *string          `json:"zipCode"`
	Price       *decimal.Decimal `json:"price"`
	Bedrooms    *int             `json:"bedrooms" validate:"omitempty,min=0"`
	Bathrooms   *decimal.Decimal `json:"bathrooms"`
	Area        *int             `json:"area" validate:"omitempty,gt=0"`
	Available   *bool            `json:"available"`
	Latitude    *decimal.Decimal `json:"latitude"`
	Longitude   *decimal.Decimal `json:"longitude"`
}

// AddImageRequest represents a new property image.
type AddImageRequest struct {
	URL       string `json:"url" validate:"required,url"`
	IsPrimary bool   `json:"isPrimary"`
}

// List godoc
// @Summary List properties newest first
// @Tags properties
// @Produce json
// @Param limit query int false "Page size" default(10)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {array} model.PropertyDetails
// @Router /properties [get]
func (h *PropertyHandler) List(c echo.Context) error {
	limit, offset := pageParams(c)
	properties, err := h.propertyService.List(c.Request().Context(), limit, offset)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, properties)
}

// Search godoc
// @Summary Search properties with filters
// @Tags properties
// @Produce json
// @Param location query string false "Substring matched against city, address, state or zip"
// @Param type query string false "Property type, or any"
// @Param priceRange query string false "Bracket token such as 1000-1500 or 3000+"
// @Param bedrooms query int false "Minimum bedrooms"
// @Param bathrooms query number false "Minimum bathrooms"
// @Param amenities query string false "Comma separated amenity IDs; all must match"
// @Param limit query int false "Page size" default(10)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {array} model.PropertyDetails
// @Router /properties/search [get]
func (h *PropertyHandler) Search(c echo.Context) error {
	filter := parseSearchFilter(c)
	limit, offset := pageParams(c)

	properties, err := h.propertyService.Search(c.Request().Context(), filter, limit, offset)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, properties)
}

// Get godoc
// @Summary Get a property with owner, images and amenities
// @Tags properties
// @Produce json
// @Param id path int true "Property ID"
// @Success 200 {object} model.PropertyDetails
// @Failure 404 {object} errors.ErrorResponse
// @Router /properties/{id} [get]
func (h *PropertyHandler) Get(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	var viewerID uint
	if claims, ok := currentClaims(c); ok {
		viewerID = claims.UserID
	}

	property, err := h.propertyService.Get(c.Request().Context(), id, viewerID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, property)
}

// Create godoc
// @Summary Create a listing (owner role required)
// @Tags properties
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreatePropertyRequest true "Listing data"
// @Success 201 {object} model.Property
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /properties [post]
func (h *PropertyHandler) Create(c echo.Context) error {
	claims, ok := currentClaims(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	var req CreatePropertyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := validateListingNumbers(req.Price, req.Bathrooms, req.Latitude, req.Longitude); err != nil {
		return err
	}

	available := true
	if req.Available != nil {
		available = *req.Available
	}

	property := &model.Property{
		Title:       req.Title,
		Description: req.Description,
		Type:        req.Type,
		Address:     req.Address,
		City:        req.City,
		State:       req.State,
		ZipCode:     req.ZipCode,
		Price:       req.Price,
		Bedrooms:    req.Bedrooms,
		Bathrooms:   req.Bathrooms,
		Area:        req.Area,
		Available:   available,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
	}

	created, err := h.propertyService.Create(c.Request().Context(), claims.UserID, property, req.Amenities)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, created)
}

// Update godoc
// @Summary Update a listing (owner of the property only)
// @Tags properties
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Property ID"
// @Param request body UpdatePropertyRequest true "Fields to update"
// @Success 200 {object} model.Property
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /properties/{id} [put]
func (h *PropertyHandler) Update(c echo.Context) error {
	claims, ok := currentClaims(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	var req UpdatePropertyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Price != nil && !req.Price.IsPositive() {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "price must be greater than 0",
			Code:  "INVALID_PRICE",
		})
	}
	if req.Bathrooms != nil {
		if err := validateBathrooms(*req.Bathrooms); err != nil {
			return err
		}
	}
	if req.Latitude != nil || req.Longitude != nil {
		lat := decimal.Zero
		lng := decimal.Zero
		if req.Latitude != nil {
			lat = *req.Latitude
		}
		if req.Longitude != nil {
			lng = *req.Longitude
		}
		if err := validateCoordinates(lat, lng); err != nil {
			return err
		}
	}

	updated, err := h.propertyService.Update(c.Request().Context(), claims.UserID, id, service.PropertyUpdate{
		Title:       req.Title,
		Description: req.Description,
		Type:        req.Type,
		Address:     req.Address,
		City:        req.City,
		State:       req.State,
		ZipCode:     req.ZipCode,
		Price:       req.Price,
		Bedrooms:    req.Bedrooms,
		Bathrooms:   req.Bathrooms,
		Area:        req.Area,
		Available:   req.Available,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete godoc
// @Summary Delete a listing and all dependent rows
// @Tags properties
// @Security BearerAuth
// @Param id path int true "Property ID"
// @Success 204
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /properties/{id} [delete]
func (h *PropertyHandler) Delete(c echo.Context) error {
	claims, ok := currentClaims(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.propertyService.Delete(c.Request().Context(), claims.UserID, id); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.NoContent(http.StatusNoContent)
}

// AddImage godoc
// @Summary Attach an image to a listing
// @Tags properties
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Property ID"
// @Param request body AddImageRequest true "Image data"
// @Success 201 {object} model.PropertyImage
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /properties/{id}/images [post]
func (h *PropertyHandler) AddImage(c echo.Context) error {
	claims, ok := currentClaims(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	var req AddImageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	image, err := h.propertyService.AddImage(c.Request().Context(), claims.UserID, id, req.URL, req.IsPrimary)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, image)
}

// DeleteImage godoc
// @Summary Delete a property image
// @Tags properties
// @Security BearerAuth
// @Param id path int true "Image ID"
// @Success 204
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /properties/images/{id} [delete]
func (h *PropertyHandler) DeleteImage(c echo.Context) error {
	claims, ok := currentClaims(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.propertyService.DeleteImage(c.Request().Context(), claims.UserID, id); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.NoContent(http.StatusNoContent)
}

// Dashboard godoc
// @Summary List the caller's own properties
// @Tags properties
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.PropertyDetails
// @Router /dashboard/properties [get]
func (h *PropertyHandler) Dashboard(c echo.Context) error {
	claims, ok := currentClaims(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	properties, err := h.propertyService.ListByOwner(c.Request().Context(), claims.UserID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, properties)
}

// parseSearchFilter resolves query parameters into a SearchFilter. The
// "any" sentinel and malformed values mean "no filter"; they never fail
// the request.
func parseSearchFilter(c echo.Context) model.SearchFilter {
	filter := model.SearchFilter{}

	filter.Location = strings.TrimSpace(c.QueryParam("location"))
	if t := c.QueryParam("type"); t != "" && t != "any" {
		filter.Type = t
	}
	filter.MinPrice, filter.MaxPrice = service.ParsePriceBracket(c.QueryParam("priceRange"))
	if v := c.QueryParam("bedrooms"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			filter.Bedrooms = &n
		}
	}
	if v := c.QueryParam("bathrooms"); v != "" {
		if d, err := decimal.NewFromString(v); err == nil && !d.IsNegative() {
			filter.Bathrooms = &d
		}
	}
	if csv := c.QueryParam("amenities"); csv != "" {
		for _, part := range strings.Split(csv, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			if id, err := strconv.ParseUint(part, 10, 32); err == nil {
				filter.AmenityIDs = append(filter.AmenityIDs, uint(id))
			}
		}
	}
	return filter
}

func pageParams(c echo.Context) (limit, offset int) {
	limit = defaultPageLimit
	if v := c.QueryParam("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	if v := c.QueryParam("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			offset = n
		}
	}
	return limit, offset
}

func idParam(c echo.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid " + name,
			Code:  "INVALID_ID",
		})
	}
	return uint(id), nil
}

func validateListingNumbers(price, bathrooms, latitude, longitude decimal.Decimal) error {
	if !price.IsPositive() {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "price must be greater than 0",
			Code:  "INVALID_PRICE",
		})
	}
	if err := validateBathrooms(bathrooms); err != nil {
		return err
	}
	return validateCoordinates(latitude, longitude)
}

// validateBathrooms enforces non-negative half-bath increments.
func validateBathrooms(bathrooms decimal.Decimal) error {
	if bathrooms.IsNegative() || !bathrooms.Mul(decimal.NewFromInt(2)).IsInteger() {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "bathrooms must be a non-negative multiple of 0.5",
			Code:  "INVALID_BATHROOMS",
		})
	}
	return nil
}

func validateCoordinates(latitude, longitude decimal.Decimal) error {
	if latitude.Abs().GreaterThan(decimal.NewFromInt(90)) {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "latitude must be between -90 and 90",
			Code:  "INVALID_LATITUDE",
		})
	}
	if longitude.Abs().GreaterThan(decimal.NewFromInt(180)) {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "longitude must be between -180 and 180",
			Code:  "INVALID_LONGITUDE",
		})
	}
	return nil
}
