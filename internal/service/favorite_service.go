package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "github.com/Sameer222006/flatfinder/internal/errors"
	"github.com/Sameer222006/flatfinder/internal/model"
	"github.com/Sameer222006/flatfinder/internal/repository"
)

// FavoriteService handles saved-property operations. Add and Remove are
// both idempotent.
type FavoriteService interface {
	Add(ctx context.Context, userID, propertyID uint) (*model.Favorite, error)
	Remove(ctx context.Context, userID, propertyID uint) error
	List(ctx context.Context, userID uint) ([]model.PropertyDetails, error)
	IsFavorite(ctx context.Context, userID, propertyID uint) (bool, error)
}

type favoriteService struct {
	favoriteRepo repository.FavoriteRepository
	propertyRepo repository.PropertyRepository
	imageRepo    repository.ImageRepository
	userRepo     repository.UserRepository
}

// NewFavoriteService creates a new favorite service.
func NewFavoriteService(
	favoriteRepo repository.FavoriteRepository,
	propertyRepo repository.PropertyRepository,
	imageRepo repository.ImageRepository,
	userRepo repository.UserRepository,
) FavoriteService {
	return &favoriteService{
		favoriteRepo: favoriteRepo,
		propertyRepo: propertyRepo,
		imageRepo:    imageRepo,
		userRepo:     userRepo,
	}
}

// Add saves the property for the user. Adding an existing favorite
// returns the existing row. When two requests race past the existence
// check, the unique index rejects the loser and the row is re-read.
func (s *favoriteService) Add(ctx context.Context, userID, propertyID uint) (*model.Favorite, error) {
	if _, err := s.propertyRepo.FindByID(ctx, propertyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPropertyNotFound
		}
		return nil, err
	}

	existing, err := s.favoriteRepo.FindByUserAndProperty(ctx, userID, propertyID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	favorite := &model.Favorite{UserID: userID, PropertyID: propertyID}
	if err := s.favoriteRepo.Create(ctx, favorite); err != nil {
		if winner, findErr := s.favoriteRepo.FindByUserAndProperty(ctx, userID, propertyID); findErr == nil {
			return winner, nil
		}
		return nil, fmt.Errorf("create favorite: %w", err)
	}
	return favorite, nil
}

// Remove deletes the pair; removing a non-existent favorite is a no-op.
func (s *favoriteService) Remove(ctx context.Context, userID, propertyID uint) error {
	return s.favoriteRepo.DeleteByUserAndProperty(ctx, userID, propertyID)
}

// List returns the user's favorited properties with images and owners.
func (s *favoriteService) List(ctx context.Context, userID uint) ([]model.PropertyDetails, error) {
	favorites, err := s.favoriteRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(favorites) == 0 {
		return []model.PropertyDetails{}, nil
	}

	propertyIDs := make([]uint, 0, len(favorites))
	for _, f := range favorites {
		propertyIDs = append(propertyIDs, f.PropertyID)
	}

	properties, err := s.propertyRepo.FindByIDs(ctx, propertyIDs)
	if err != nil {
		return nil, err
	}

	images, err := s.imageRepo.FindByPropertyIDs(ctx, propertyIDs)
	if err != nil {
		return nil, err
	}
	imagesByProperty := make(map[uint][]model.PropertyImage, len(properties))
	for _, img := range images {
		imagesByProperty[img.PropertyID] = append(imagesByProperty[img.PropertyID], img)
	}

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
	ownersByID := make(map[uint]model.User, len(owners))
	for _, o := range owners {
		ownersByID[o.ID] = o
	}

	fav := true
	results := make([]model.PropertyDetails, 0, len(properties))
	for _, p := range properties {
		details := model.PropertyDetails{
			Property:   p,
			Images:     imagesByProperty[p.ID],
			IsFavorite: &fav,
		}
		if details.Images == nil {
			details.Images = []model.PropertyImage{}
		}
		if owner, ok := ownersByID[p.OwnerID]; ok {
			o := owner
			details.Owner = &o
		}
		results = append(results, details)
	}
	return results, nil
}

func (s *favoriteService) IsFavorite(ctx context.Context, userID, propertyID uint) (bool, error) {
	_, err := s.favoriteRepo.FindByUserAndProperty(ctx, userID, propertyID)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	return false, err
}
