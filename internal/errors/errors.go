package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrUserNotFound is returned when a referenced user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrPropertyNotFound is returned when a property does not exist.
	ErrPropertyNotFound = errors.New("property not found")
	// ErrImageNotFound is returned when a property image does not exist.
	ErrImageNotFound = errors.New("image not found")
	// ErrNotOwner is returned when a user acts on a property they do not own.
	ErrNotOwner = errors.New("you can only modify your own properties")
	// ErrOwnerRoleRequired is returned when a tenant tries to create a listing.
	ErrOwnerRoleRequired = errors.New("only property owners can create listings")
	// ErrSelfMessage is returned when a user messages themselves.
	ErrSelfMessage = errors.New("cannot send a message to yourself")
	// ErrUsernameTaken is returned when the requested username already exists.
	ErrUsernameTaken = errors.New("username already taken")
	// ErrEmailTaken is returned when the requested email already exists.
	ErrEmailTaken = errors.New("email already registered")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Existence errors map
// to 404 and ownership errors to 403; handlers check existence first so
// 404 wins when a resource is absent.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrPropertyNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "PROPERTY_NOT_FOUND")
	case errors.Is(err, ErrImageNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "IMAGE_NOT_FOUND")
	case errors.Is(err, ErrNotOwner):
		return NewHTTPError(http.StatusForbidden, err.Error(), "NOT_OWNER")
	case errors.Is(err, ErrOwnerRoleRequired):
		return NewHTTPError(http.StatusForbidden, err.Error(), "OWNER_ROLE_REQUIRED")
	case errors.Is(err, ErrSelfMessage):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "SELF_MESSAGE")
	case errors.Is(err, ErrUsernameTaken):
		return NewHTTPError(http.StatusConflict, err.Error(), "USERNAME_TAKEN")
	case errors.Is(err, ErrEmailTaken):
		return NewHTTPError(http.StatusConflict, err.Error(), "EMAIL_TAKEN")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
