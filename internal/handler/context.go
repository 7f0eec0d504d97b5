package handler

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/Sameer222006/flatfinder/internal/auth"
)

// currentClaims returns the JWT claims attached by the auth middleware.
// The required middleware stores a *jwt.Token, the optional one stores
// the claims directly.
func currentClaims(c echo.Context) (*auth.Claims, bool) {
	switch v := c.Get("user").(type) {
	case *jwt.Token:
		claims, ok := v.Claims.(*auth.Claims)
		return claims, ok
	case *auth.Claims:
		return v, true
	}
	return nil, false
}
