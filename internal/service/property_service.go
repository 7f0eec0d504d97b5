package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Sameer222006/flatfinder/internal/cache"
	apperrors "github.com/Sameer222006/flatfinder/internal/errors"
	"github.com/Sameer222006/flatfinder/internal/model"
	"github.com/Sameer222006/flatfinder/internal/repository"
)

const propertyCacheTTL = 5 * time.Minute

// PropertyUpdate carries partial listing updates; nil means unchanged.
type PropertyUpdate struct {
	Title       *string
	Description *string
	Type        *string
	Address     *string
	City        *string
	State       *string
	ZipCode     *string
	Price       *decimal.Decimal
	Bedrooms    *int
	Bathrooms   *decimal.Decimal
	Area        *int
	Available   *bool
	Latitude    *decimal.Decimal
	Longitude   *decimal.Decimal
}

// PropertyService handles listing operations: pages and filtered search
// enriched with images and owners, ownership-checked mutations, and the
// cascading delete.
type PropertyService interface {
	List(ctx context.Context, limit, offset int) ([]model.PropertyDetails, error)
	Search(ctx context.Context, filter model.SearchFilter, limit, offset int) ([]model.PropertyDetails, error)
	Get(ctx context.Context, id, viewerID uint) (*model.PropertyDetails, error)
	Create(ctx context.Context, ownerID uint, property *model.Property, amenityIDs []uint) (*model.Property, error)
	Update(ctx context.Context, userID, id uint, update PropertyUpdate) (*model.Property, error)
	Delete(ctx context.Context, userID, id uint) error
	ListByOwner(ctx context.Context, ownerID uint) ([]model.PropertyDetails, error)
	AddImage(ctx context.Context, userID, propertyID uint, url string, isPrimary bool) (*model.PropertyImage, error)
	DeleteImage(ctx context.Context, userID, imageID uint) error
}

type propertyService struct {
	propertyRepo repository.PropertyRepository
	imageRepo    repository.ImageRepository
	userRepo     repository.UserRepository
	favoriteRepo repository.FavoriteRepository
	cache        *cache.Client
}

// NewPropertyService creates a new property service.
func NewPropertyService(
	propertyRepo repository.PropertyRepository,
	imageRepo repository.ImageRepository,
	userRepo repository.UserRepository,
	favoriteRepo repository.FavoriteRepository,
	cache *cache.Client,
) PropertyService {
	return &propertyService{
		propertyRepo: propertyRepo,
		imageRepo:    imageRepo,
		userRepo:     userRepo,
		favoriteRepo: favoriteRepo,
		cache:        cache,
	}
}

func (s *propertyService) cacheKey(id uint) string {
	return fmt.Sprintf("property:%d", id)
}

// List returns a newest-first page of properties with their image lists.
func (s *propertyService) List(ctx context.Context, limit, offset int) ([]model.PropertyDetails, error) {
	properties, err := s.propertyRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	return s.enrich(ctx, properties, false)
}

// Search runs the filtered query and enriches each hit with images and
// the owner's public profile.
func (s *propertyService) Search(ctx context.Context, filter model.SearchFilter, limit, offset int) ([]model.PropertyDetails, error) {
	properties, err := s.propertyRepo.Search(ctx, filter, limit, offset)
	if err != nil {
		return nil, err
	}
	return s.enrich(ctx, properties, true)
}

// Get returns the property with owner, images and amenities. When
// viewerID is non-zero the caller's favorite flag is attached. The
// viewer-independent part is cached.
func (s *propertyService) Get(ctx context.Context, id, viewerID uint) (*model.PropertyDetails, error) {
	details, err := s.getDetails(ctx, id)
	if err != nil {
		return nil, err
	}

	if viewerID != 0 {
		fav := true
		if _, err := s.favoriteRepo.FindByUserAndProperty(ctx, viewerID, id); err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, err
			}
			fav = false
		}
		details.IsFavorite = &fav
	}
	return details, nil
}

func (s *propertyService) getDetails(ctx context.Context, id uint) (*model.PropertyDetails, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.PropertyDetails
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	property, err := s.propertyRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPropertyNotFound
		}
		return nil, err
	}

	images, err := s.imageRepo.FindByPropertyID(ctx, id)
	if err != nil {
		return nil, err
	}
	if images == nil {
		images = []model.PropertyImage{}
	}

	owner, err := s.userRepo.FindByID(ctx, property.OwnerID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	amenities, err := s.propertyRepo.AmenitiesFor(ctx, id)
	if err != nil {
		return nil, err
	}

	details := &model.PropertyDetails{
		Property:  *property,
		Images:    images,
		Owner:     owner,
		Amenities: amenities,
	}

	if payload, err := json.Marshal(details); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, propertyCacheTTL)
	}
	return details, nil
}

// Create inserts a listing for an owner-role user, linking the given
// amenity IDs in the same transaction.
func (s *propertyService) Create(ctx context.Context, ownerID uint, property *model.Property, amenityIDs []uint) (*model.Property, error) {
	owner, err := s.userRepo.FindByID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	if owner.Role != model.RoleOwner {
		return nil, apperrors.ErrOwnerRoleRequired
	}

	property.OwnerID = ownerID
	if err := s.propertyRepo.Create(ctx, property, amenityIDs); err != nil {
		return nil, fmt.Errorf("create property: %w", err)
	}
	return property, nil
}

// Update applies a partial update after the ownership check. A missing
// property surfaces as not-found before any forbidden error.
func (s *propertyService) Update(ctx context.Context, userID, id uint, update PropertyUpdate) (*model.Property, error) {
	if err := s.checkOwnership(ctx, userID, id); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if update.Title != nil {
		fields["title"] = *update.Title
	}
	if update.Description != nil {
		fields["description"] = *update.Description
	}
	if update.Type != nil {
		fields["type"] = *update.Type
	}
	if update.Address != nil {
		fields["address"] = *update.Address
	}
	if update.City != nil {
		fields["city"] = *update.City
	}
	if update.State != nil {
		fields["state"] = *update.State
	}
	if update.ZipCode != nil {
		fields["zip_code"] = *update.ZipCode
	}
	if update.Price != nil {
		fields["price"] = *update.Price
	}
	if update.Bedrooms != nil {
		fields["bedrooms"] = *update.Bedrooms
	}
	if update.Bathrooms != nil {
		fields["bathrooms"] = *update.Bathrooms
	}
	if update.Area != nil {
		fields["area"] = *update.Area
	}
	if update.Available != nil {
		fields["available"] = *update.Available
	}
	if update.Latitude != nil {
		fields["latitude"] = *update.Latitude
	}
	if update.Longitude != nil {
		fields["longitude"] = *update.Longitude
	}

	if len(fields) > 0 {
		if err := s.propertyRepo.Update(ctx, id, fields); err != nil {
			return nil, fmt.Errorf("update property: %w", err)
		}
		_ = s.cache.Delete(ctx, s.cacheKey(id))
	}

	return s.propertyRepo.FindByID(ctx, id)
}

// Delete removes the property and every dependent row atomically.
func (s *propertyService) Delete(ctx context.Context, userID, id uint) error {
	if err := s.checkOwnership(ctx, userID, id); err != nil {
		return err
	}
	if err := s.propertyRepo.DeleteCascade(ctx, id); err != nil {
		return fmt.Errorf("delete property: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}

// ListByOwner returns all properties owned by the user, with images.
func (s *propertyService) ListByOwner(ctx context.Context, ownerID uint) ([]model.PropertyDetails, error) {
	properties, err := s.propertyRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return s.enrich(ctx, properties, false)
}

// AddImage attaches an image to the caller's property.
func (s *propertyService) AddImage(ctx context.Context, userID, propertyID uint, url string, isPrimary bool) (*model.PropertyImage, error) {
	if err := s.checkOwnership(ctx, userID, propertyID); err != nil {
		return nil, err
	}

	image := &model.PropertyImage{
		PropertyID: propertyID,
		URL:        url,
		IsPrimary:  isPrimary,
	}
	if err := s.imageRepo.Add(ctx, image); err != nil {
		return nil, fmt.Errorf("add image: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(propertyID))
	return image, nil
}

// DeleteImage removes an image after checking the caller owns its parent
// property.
func (s *propertyService) DeleteImage(ctx context.Context, userID, imageID uint) error {
	image, err := s.imageRepo.FindByID(ctx, imageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrImageNotFound
		}
		return err
	}
	if err := s.checkOwnership(ctx, userID, image.PropertyID); err != nil {
		return err
	}
	if err := s.imageRepo.Delete(ctx, imageID); err != nil {
		return fmt.Errorf("delete image: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(image.PropertyID))
	return nil
}

func (s *propertyService) checkOwnership(ctx context.Context, userID, propertyID uint) error {
	property, err := s.propertyRepo.FindByID(ctx, propertyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrPropertyNotFound
		}
		return err
	}
	if property.OwnerID != userID {
		return apperrors.ErrNotOwner
	}
	return nil
}

// enrich batch-loads images (and optionally owners) for a page of
// properties with two IN queries.
func (s *propertyService) enrich(ctx context.Context, properties []model.Property, includeOwner bool) ([]model.PropertyDetails, error) {
	if len(properties) == 0 {
		return []model.PropertyDetails{}, nil
	}

	ids := make([]uint, 0, len(properties))
	for _, p := range properties {
		ids = append(ids, p.ID)
	}

	images, err := s.imageRepo.FindByPropertyIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	imagesByProperty := make(map[uint][]model.PropertyImage, len(properties))
	for _, img := range images {
		imagesByProperty[img.PropertyID] = append(imagesByProperty[img.PropertyID], img)
	}

	var ownersByID map[uint]model.User
	if includeOwner {
		seen := map[uint]struct{}{}
		ownerIDs := make([]uint, 0, len(properties))
		for _, p := range properties {
			if _, ok := seen[p.OwnerID]; !ok {
				seen[p.OwnerID] = struct{}{}
				ownerIDs = append(ownerIDs, p.OwnerID)
			}
		}
		owners, err := s.userRepo.FindByIDs(ctx, ownerIDs)
		if err != nil {
			return nil, err
		}
		ownersByID = make(map[uint]model.User, len(owners))
		for _, o := range owners {
			ownersByID[o.ID] = o
		}
	}

	results := make([]model.PropertyDetails, 0, len(properties))
	for _, p := range properties {
		details := model.PropertyDetails{
			Property: p,
			Images:   imagesByProperty[p.ID],
		}
		if details.Images == nil {
			details.Images = []model.PropertyImage{}
		}
		if includeOwner {
			if owner, ok := ownersByID[p.OwnerID]; ok {
				o := owner
				details.Owner = &o
			}
		}
		results = append(results, details)
	}
	return results, nil
}
