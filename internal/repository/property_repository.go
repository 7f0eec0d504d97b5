package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/Sameer222006/flatfinder/internal/model"
)

// PropertyRepository defines property persistence operations, including
// the filtered search query and the cascading delete.
type PropertyRepository interface {
	Create(ctx context.Context, property *model.Property, amenityIDs []uint) error
	FindByID(ctx context.Context, id uint) (*model.Property, error)
	FindByIDs(ctx context.Context, ids []uint) ([]model.Property, error)
	List(ctx context.Context, limit, offset int) ([]model.Property, error)
	ListByOwner(ctx context.Context, ownerID uint) ([]model.Property, error)
	Search(ctx context.Context, filter model.SearchFilter, limit, offset int) ([]model.Property, error)
	Update(ctx context.Context, id uint, fields map[string]interface{}) error
	DeleteCascade(ctx context.Context, id uint) error
	AmenitiesFor(ctx context.Context, propertyID uint) ([]model.Amenity, error)
}

type propertyRepository struct {
	db *gorm.DB
}

// NewPropertyRepository creates a new property repository.
func NewPropertyRepository(db *gorm.DB) PropertyRepository {
	return &propertyRepository{db: db}
}

// Create inserts the property and its amenity links in a single transaction.
func (r *propertyRepository) Create(ctx context.Context, property *model.Property, amenityIDs []uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(property).Error; err != nil {
			return err
		}
		for _, amenityID := range amenityIDs {
			link := model.PropertyAmenity{PropertyID: property.ID, AmenityID: amenityID}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *propertyRepository) FindByID(ctx context.Context, id uint) (*model.Property, error) {
	var property model.Property
	if err := r.db.WithContext(ctx).First(&property, id).Error; err != nil {
		return nil, err
	}
	return &property, nil
}

func (r *propertyRepository) FindByIDs(ctx context.Context, ids []uint) ([]model.Property, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var properties []model.Property
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&properties).Error; err != nil {
		return nil, err
	}
	return properties, nil
}

func (r *propertyRepository) List(ctx context.Context, limit, offset int) ([]model.Property, error) {
	var properties []model.Property
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&properties).Error
	if err != nil {
		return nil, err
	}
	return properties, nil
}

func (r *propertyRepository) ListByOwner(ctx context.Context, ownerID uint) ([]model.Property, error) {
	var properties []model.Property
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&properties).Error
	if err != nil {
		return nil, err
	}
	return properties, nil
}

// Search applies every filter predicate before pagination, so pages are
// full whenever enough matches exist. The amenity predicate keeps only
// properties linked to every requested amenity ID.
func (r *propertyRepository) Search(ctx context.Context, filter model.SearchFilter, limit, offset int) ([]model.Property, error) {
	q := r.db.WithContext(ctx).Model(&model.Property{})

	if filter.Location != "" {
		pattern := "%" + strings.ToLower(filter.Location) + "%"
		q = q.Where(
			"LOWER(city) LIKE ? OR LOWER(address) LIKE ? OR LOWER(state) LIKE ? OR LOWER(zip_code) LIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}
	if filter.Type != "" {
		q = q.Where("type = ?", filter.Type)
	}
	if filter.MinPrice != nil {
		q = q.Where("price >= ?", filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		q = q.Where("price <= ?", filter.MaxPrice)
	}
	if filter.Bedrooms != nil {
		q = q.Where("bedrooms >= ?", *filter.Bedrooms)
	}
	if filter.Bathrooms != nil {
		q = q.Where("bathrooms >= ?", filter.Bathrooms)
	}
	if n := len(filter.AmenityIDs); n > 0 {
		linked := r.db.Model(&model.PropertyAmenity{}).
			Select("property_id").
			Where("amenity_id IN ?", filter.AmenityIDs).
			Group("property_id").
			Having("COUNT(DISTINCT amenity_id) = ?", n)
		q = q.Where("id IN (?)", linked)
	}

	var properties []model.Property
	err := q.Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&properties).Error
	if err != nil {
		return nil, err
	}
	return properties, nil
}

func (r *propertyRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).
		Model(&model.Property{}).
		Where("id = ?", id).
		Updates(fields).Error
}

// DeleteCascade removes the property together with its images, amenity
// links, favorites and messages in one transaction, so a partial failure
// cannot leave orphaned rows.
func (r *propertyRepository) DeleteCascade(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("property_id = ?", id).Delete(&model.PropertyImage{}).Error; err != nil {
			return err
		}
		if err := tx.Where("property_id = ?", id).Delete(&model.PropertyAmenity{}).Error; err != nil {
			return err
		}
		if err := tx.Where("property_id = ?", id).Delete(&model.Favorite{}).Error; err != nil {
			return err
		}
		if err := tx.Where("property_id = ?", id).Delete(&model.Message{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Property{}, id).Error
	})
}

func (r *propertyRepository) AmenitiesFor(ctx context.Context, propertyID uint) ([]model.Amenity, error) {
	var list []model.Amenity
	err := r.db.WithContext(ctx).
		Joins("JOIN property_amenities ON property_amenities.amenity_id = amenities.id").
		Where("property_amenities.property_id = ?", propertyID).
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
