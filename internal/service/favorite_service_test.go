package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "github.com/Sameer222006/flatfinder/internal/errors"
	"github.com/Sameer222006/flatfinder/internal/model"
)

func newFavoriteServiceForTest() (FavoriteService, *MockFavoriteRepository, *MockPropertyRepository, *MockImageRepository, *MockUserRepository) {
	favoriteRepo := new(MockFavoriteRepository)
	propertyRepo := new(MockPropertyRepository)
	imageRepo := new(MockImageRepository)
	userRepo := new(MockUserRepository)
	return NewFavoriteService(favoriteRepo, propertyRepo, imageRepo, userRepo), favoriteRepo, propertyRepo, imageRepo, userRepo
}

func TestFavoriteService_Add(t *testing.T) {
	t.Run("creates new favorite", func(t *testing.T) {
		svc, favoriteRepo, propertyRepo, _, _ := newFavoriteServiceForTest()
		propertyRepo.On("FindByID", mock.Anything, uint(5)).Return(&model.Property{ID: 5}, nil)
		favoriteRepo.On("FindByUserAndProperty", mock.Anything, uint(1), uint(5)).Return(nil, gorm.ErrRecordNotFound)
		favoriteRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Favorite")).Return(nil)

		favorite, err := svc.Add(context.Background(), 1, 5)

		assert.NoError(t, err)
		assert.Equal(t, uint(1), favorite.UserID)
		assert.Equal(t, uint(5), favorite.PropertyID)
		favoriteRepo.AssertExpectations(t)
	})

	t.Run("repeated add returns existing row", func(t *testing.T) {
		svc, favoriteRepo, propertyRepo, _, _ := newFavoriteServiceForTest()
		existing := &model.Favorite{ID: 42, UserID: 1, PropertyID: 5}
		propertyRepo.On("FindByID", mock.Anything, uint(5)).Return(&model.Property{ID: 5}, nil)
		favoriteRepo.On("FindByUserAndProperty", mock.Anything, uint(1), uint(5)).Return(existing, nil)

		favorite, err := svc.Add(context.Background(), 1, 5)

		assert.NoError(t, err)
		assert.Equal(t, existing, favorite)
		favoriteRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("racing insert falls back to the winner's row", func(t *testing.T) {
		svc, favoriteRepo, propertyRepo, _, _ := newFavoriteServiceForTest()
		winner := &model.Favorite{ID: 43, UserID: 1, PropertyID: 5}
		propertyRepo.On("FindByID", mock.Anything, uint(5)).Return(&model.Property{ID: 5}, nil)
		favoriteRepo.On("FindByUserAndProperty", mock.Anything, uint(1), uint(5)).Return(nil, gorm.ErrRecordNotFound).Once()
		favoriteRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Favorite")).Return(gorm.ErrDuplicatedKey)
		favoriteRepo.On("FindByUserAndProperty", mock.Anything, uint(1), uint(5)).Return(winner, nil).Once()

		favorite, err := svc.Add(context.Background(), 1, 5)

		assert.NoError(t, err)
		assert.Equal(t, winner, favorite)
	})

	t.Run("unknown property", func(t *testing.T) {
		svc, _, propertyRepo, _, _ := newFavoriteServiceForTest()
		propertyRepo.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

		favorite, err := svc.Add(context.Background(), 1, 99)

		assert.ErrorIs(t, err, apperrors.ErrPropertyNotFound)
		assert.Nil(t, favorite)
	})
}

func TestFavoriteService_Remove(t *testing.T) {
	svc, favoriteRepo, _, _, _ := newFavoriteServiceForTest()
	favoriteRepo.On("DeleteByUserAndProperty", mock.Anything, uint(1), uint(5)).Return(nil)

	// Removing an absent favorite is the same call; the repository treats
	// zero affected rows as success.
	assert.NoError(t, svc.Remove(context.Background(), 1, 5))
	favoriteRepo.AssertExpectations(t)
}

func TestFavoriteService_List(t *testing.T) {
	svc, favoriteRepo, propertyRepo, imageRepo, userRepo := newFavoriteServiceForTest()

	favoriteRepo.On("ListByUser", mock.Anything, uint(1)).Return([]model.Favorite{
		{ID: 1, UserID: 1, PropertyID: 5},
		{ID: 2, UserID: 1, PropertyID: 7},
	}, nil)
	propertyRepo.On("FindByIDs", mock.Anything, []uint{5, 7}).Return([]model.Property{
		{ID: 5, OwnerID: 2, Title: "Cozy 1BR"},
		{ID: 7, OwnerID: 2, Title: "Penthouse"},
	}, nil)
	imageRepo.On("FindByPropertyIDs", mock.Anything, []uint{5, 7}).Return([]model.PropertyImage{
		{ID: 50, PropertyID: 5, URL: "https://img/5.jpg", IsPrimary: true},
	}, nil)
	userRepo.On("FindByIDs", mock.Anything, []uint{2}).Return([]model.User{
		{ID: 2, Name: "Jessica Brown"},
	}, nil)

	properties, err := svc.List(context.Background(), 1)

	assert.NoError(t, err)
	assert.Len(t, properties, 2)
	assert.Equal(t, "Cozy 1BR", properties[0].Title)
	assert.Len(t, properties[0].Images, 1)
	assert.NotNil(t, properties[0].IsFavorite)
	assert.True(t, *properties[0].IsFavorite)
	assert.Equal(t, "Jessica Brown", properties[0].Owner.Name)
	// Property with no images still serializes as an empty array.
	assert.NotNil(t, properties[1].Images)
	assert.Empty(t, properties[1].Images)
}

func TestFavoriteService_List_Empty(t *testing.T) {
	svc, favoriteRepo, _, _, _ := newFavoriteServiceForTest()
	favoriteRepo.On("ListByUser", mock.Anything, uint(1)).Return([]model.Favorite{}, nil)

	properties, err := svc.List(context.Background(), 1)

	assert.NoError(t, err)
	assert.NotNil(t, properties)
	assert.Empty(t, properties)
}
