package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Sameer222006/flatfinder/internal/model"
)

// ImageRepository defines property image persistence operations.
type ImageRepository interface {
	Add(ctx context.Context, image *model.PropertyImage) error
	FindByID(ctx context.Context, id uint) (*model.PropertyImage, error)
	FindByPropertyID(ctx context.Context, propertyID uint) ([]model.PropertyImage, error)
	FindByPropertyIDs(ctx context.Context, propertyIDs []uint) ([]model.PropertyImage, error)
	FindPrimaryByPropertyIDs(ctx context.Context, propertyIDs []uint) ([]model.PropertyImage, error)
	Delete(ctx context.Context, id uint) error
}

type imageRepository struct {
	db *gorm.DB
}

// NewImageRepository creates a new image repository.
func NewImageRepository(db *gorm.DB) ImageRepository {
	return &imageRepository{db: db}
}

// Add inserts an image. When the image is primary, any previous primary
// flag for the property is cleared in the same transaction, keeping the
// one-primary-per-property invariant crash-safe.
func (r *imageRepository) Add(ctx context.Context, image *model.PropertyImage) error {
	if !image.IsPrimary {
		return r.db.WithContext(ctx).Create(image).Error
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&model.PropertyImage{}).
			Where("property_id = ? AND is_primary = ?", image.PropertyID, true).
			Update("is_primary", false).Error
		if err != nil {
			return err
		}
		return tx.Create(image).Error
	})
}

func (r *imageRepository) FindByID(ctx context.Context, id uint) (*model.PropertyImage, error) {
	var image model.PropertyImage
	if err := r.db.WithContext(ctx).First(&image, id).Error; err != nil {
		return nil, err
	}
	return &image, nil
}

func (r *imageRepository) FindByPropertyID(ctx context.Context, propertyID uint) ([]model.PropertyImage, error) {
	var images []model.PropertyImage
	err := r.db.WithContext(ctx).
		Where("property_id = ?", propertyID).
		Order("is_primary DESC").
		Find(&images).Error
	if err != nil {
		return nil, err
	}
	return images, nil
}

func (r *imageRepository) FindByPropertyIDs(ctx context.Context, propertyIDs []uint) ([]model.PropertyImage, error) {
	if len(propertyIDs) == 0 {
		return nil, nil
	}
	var images []model.PropertyImage
	err := r.db.WithContext(ctx).
		Where("property_id IN ?", propertyIDs).
		Order("is_primary DESC").
		Find(&images).Error
	if err != nil {
		return nil, err
	}
	return images, nil
}

func (r *imageRepository) FindPrimaryByPropertyIDs(ctx context.Context, propertyIDs []uint) ([]model.PropertyImage, error) {
	if len(propertyIDs) == 0 {
		return nil, nil
	}
	var images []model.PropertyImage
	err := r.db.WithContext(ctx).
		Where("property_id IN ? AND is_primary = ?", propertyIDs, true).
		Find(&images).Error
	if err != nil {
		return nil, err
	}
	return images, nil
}

func (r *imageRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.PropertyImage{}, id).Error
}
