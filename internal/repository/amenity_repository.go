package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Sameer222006/flatfinder/internal/model"
)

// AmenityRepository defines amenity persistence operations.
type AmenityRepository interface {
	List(ctx context.Context) ([]model.Amenity, error)
	FindByName(ctx context.Context, name string) (*model.Amenity, error)
	Create(ctx context.Context, amenity *model.Amenity) error
}

type amenityRepository struct {
	db *gorm.DB
}

// NewAmenityRepository creates a new amenity repository.
func NewAmenityRepository(db *gorm.DB) AmenityRepository {
	return &amenityRepository{db: db}
}

func (r *amenityRepository) List(ctx context.Context) ([]model.Amenity, error) {
	var amenities []model.Amenity
	if err := r.db.WithContext(ctx).Order("id").Find(&amenities).Error; err != nil {
		return nil, err
	}
	return amenities, nil
}

func (r *amenityRepository) FindByName(ctx context.Context, name string) (*model.Amenity, error) {
	var amenity model.Amenity
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&amenity).Error; err != nil {
		return nil, err
	}
	return &amenity, nil
}

func (r *amenityRepository) Create(ctx context.Context, amenity *model.Amenity) error {
	return r.db.WithContext(ctx).Create(amenity).Error
}
