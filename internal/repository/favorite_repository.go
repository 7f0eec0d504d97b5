package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Sameer222006/flatfinder/internal/model"
)

// FavoriteRepository defines favorite persistence operations.
type FavoriteRepository interface {
	Create(ctx context.Context, favorite *model.Favorite) error
	FindByUserAndProperty(ctx context.Context, userID, propertyID uint) (*model.Favorite, error)
	DeleteByUserAndProperty(ctx context.Context, userID, propertyID uint) error
	ListByUser(ctx context.Context, userID uint) ([]model.Favorite, error)
}

type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository creates a new favorite repository.
func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

func (r *favoriteRepository) Create(ctx context.Context, favorite *model.Favorite) error {
	return r.db.WithContext(ctx).Create(favorite).Error
}

func (r *favoriteRepository) FindByUserAndProperty(ctx context.Context, userID, propertyID uint) (*model.Favorite, error) {
	var favorite model.Favorite
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND property_id = ?", userID, propertyID).
		First(&favorite).Error
	if err != nil {
		return nil, err
	}
	return &favorite, nil
}

// DeleteByUserAndProperty is a silent no-op when the pair does not exist.
func (r *favoriteRepository) DeleteByUserAndProperty(ctx context.Context, userID, propertyID uint) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND property_id = ?", userID, propertyID).
		Delete(&model.Favorite{}).Error
}

func (r *favoriteRepository) ListByUser(ctx context.Context, userID uint) ([]model.Favorite, error) {
	var favorites []model.Favorite
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&favorites).Error
	if err != nil {
		return nil, err
	}
	return favorites, nil
}
