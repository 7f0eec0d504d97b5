package main

import (
	"log"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"

	"github.com/Sameer222006/flatfinder/internal/auth"
	"github.com/Sameer222006/flatfinder/internal/cache"
	"github.com/Sameer222006/flatfinder/internal/config"
	"github.com/Sameer222006/flatfinder/internal/db"
	"github.com/Sameer222006/flatfinder/internal/handler"
	"github.com/Sameer222006/flatfinder/internal/model"
	"github.com/Sameer222006/flatfinder/internal/repository"
	"github.com/Sameer222006/flatfinder/internal/router"
	"github.com/Sameer222006/flatfinder/internal/service"
)

// @title FlatFinder API
// @version 1.0
// @description Rental property marketplace with search, favorites, messaging, and JWT authentication.
// @host localhost:5000
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.Message{},
			&model.Favorite{},
			&model.PropertyAmenity{},
			&model.PropertyImage{},
			&model.Amenity{},
			&model.Property{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Property{},
		&model.PropertyImage{},
		&model.Amenity{},
		&model.PropertyAmenity{},
		&model.Favorite{},
		&model.Message{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	propertyRepo := repository.NewPropertyRepository(gormDB)
	imageRepo := repository.NewImageRepository(gormDB)
	amenityRepo := repository.NewAmenityRepository(gormDB)
	favoriteRepo := repository.NewFavoriteRepository(gormDB)
	messageRepo := repository.NewMessageRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, tokenStore)
	userService := service.NewUserService(userRepo, cacheClient)
	propertyService := service.NewPropertyService(propertyRepo, imageRepo, userRepo, favoriteRepo, cacheClient)
	favoriteService := service.NewFavoriteService(favoriteRepo, propertyRepo, imageRepo, userRepo)
	messageService := service.NewMessageService(messageRepo, userRepo, propertyRepo, imageRepo)
	amenityService := service.NewAmenityService(amenityRepo, cacheClient)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	propertyHandler := handler.NewPropertyHandler(propertyService)
	favoriteHandler := handler.NewFavoriteHandler(favoriteService)
	messageHandler := handler.NewMessageHandler(messageService)
	amenityHandler := handler.NewAmenityHandler(amenityService)

	// Register routes
	router.Register(
		e,
		cfg,
		jwtService,
		authHandler,
		userHandler,
		propertyHandler,
		favoriteHandler,
		messageHandler,
		amenityHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
