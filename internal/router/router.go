package router

import (
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/Sameer222006/flatfinder/internal/auth"
	"github.com/Sameer222006/flatfinder/internal/config"
	"github.com/Sameer222006/flatfinder/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	jwtService *auth.JWTService,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	propertyHandler *handler.PropertyHandler,
	favoriteHandler *handler.FavoriteHandler,
	messageHandler *handler.MessageHandler,
	amenityHandler *handler.AmenityHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/refresh", authHandler.Refresh)
	api.POST("/auth/logout", authHandler.Logout)

	api.GET("/properties", propertyHandler.List)
	api.GET("/properties/search", propertyHandler.Search)
	api.GET("/properties/:id", propertyHandler.Get, optionalAuth(jwtService))
	api.GET("/amenities", amenityHandler.List)

	// Secured routes (require JWT authentication)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
	}))

	secured.GET("/me", userHandler.Me)
	secured.PUT("/me", userHandler.UpdateMe)

	// Property management routes
	secured.POST("/properties", propertyHandler.Create)
	secured.PUT("/properties/:id", propertyHandler.Update)
	secured.DELETE("/properties/:id", propertyHandler.Delete)
	secured.POST("/properties/:id/images", propertyHandler.AddImage)
	secured.DELETE("/properties/images/:id", propertyHandler.DeleteImage)
	secured.GET("/dashboard/properties", propertyHandler.Dashboard)

	// Favorite routes
	secured.GET("/favorites", favoriteHandler.List)
	secured.POST("/favorites", favoriteHandler.Add)
	secured.DELETE("/favorites/:propertyId", favoriteHandler.Remove)

	// Messaging routes
	secured.POST("/messages", messageHandler.Send)
	secured.GET("/conversations", messageHandler.Conversations)
	secured.GET("/conversations/:userId/:propertyId", messageHandler.Thread)
}

// optionalAuth attaches claims when a valid bearer token is present and
// lets the request through either way.
func optionalAuth(jwtService *auth.JWTService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if token, ok := strings.CutPrefix(header, "Bearer "); ok {
				if claims, err := jwtService.ValidateToken(token); err == nil {
					c.Set("user", claims)
				}
			}
			return next(c)
		}
	}
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
