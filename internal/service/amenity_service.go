package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Sameer222006/flatfinder/internal/cache"
	"github.com/Sameer222006/flatfinder/internal/model"
	"github.com/Sameer222006/flatfinder/internal/repository"
)

const (
	amenityCacheKey = "amenities"
	amenityCacheTTL = 30 * time.Minute
)

// AmenityService exposes the shared amenity catalogue.
type AmenityService interface {
	List(ctx context.Context) ([]model.Amenity, error)
}

type amenityService struct {
	repo  repository.AmenityRepository
	cache *cache.Client
}

// NewAmenityService creates a new amenity service.
func NewAmenityService(repo repository.AmenityRepository, cache *cache.Client) AmenityService {
	return &amenityService{repo: repo, cache: cache}
}

// List returns all amenities. The catalogue changes only at seed time, so
// it is cached with a generous TTL.
func (s *amenityService) List(ctx context.Context) ([]model.Amenity, error) {
	if data, _ := s.cache.Get(ctx, amenityCacheKey); data != nil {
		var cached []model.Amenity
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	amenities, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(amenities); err == nil {
		_ = s.cache.Set(ctx, amenityCacheKey, payload, amenityCacheTTL)
	}
	return amenities, nil
}
