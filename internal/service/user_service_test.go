package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "github.com/Sameer222006/flatfinder/internal/errors"
	"github.com/Sameer222006/flatfinder/internal/model"
)

func TestUserService_GetUser(t *testing.T) {
	t.Run("returns user", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, uint(7)).Return(&model.User{ID: 7, Username: "tenant1"}, nil)

		svc := NewUserService(mockRepo, nil)
		user, err := svc.GetUser(context.Background(), 7)

		assert.NoError(t, err)
		assert.Equal(t, "tenant1", user.Username)
	})

	t.Run("unknown user", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

		svc := NewUserService(mockRepo, nil)
		user, err := svc.GetUser(context.Background(), 99)

		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
		assert.Nil(t, user)
	})
}

func TestUserService_UpdateProfile(t *testing.T) {
	t.Run("applies only provided fields", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, uint(7)).Return(&model.User{
			ID: 7, Username: "tenant1", Email: "old@example.com", Name: "Old Name", Bio: "old bio",
		}, nil)
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

		name := "New Name"
		phone := "+1 (555) 000-1111"
		svc := NewUserService(mockRepo, nil)
		user, err := svc.UpdateProfile(context.Background(), 7, ProfileUpdate{Name: &name, Phone: &phone})

		assert.NoError(t, err)
		assert.Equal(t, "New Name", user.Name)
		assert.Equal(t, phone, user.Phone)
		assert.Equal(t, "old@example.com", user.Email)
		assert.Equal(t, "old bio", user.Bio)
		mockRepo.AssertExpectations(t)
	})

	t.Run("rejects taken email", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, uint(7)).Return(&model.User{ID: 7, Email: "old@example.com"}, nil)
		mockRepo.On("FindByEmail", mock.Anything, "taken@example.com").Return(&model.User{ID: 8}, nil)

		email := "taken@example.com"
		svc := NewUserService(mockRepo, nil)
		user, err := svc.UpdateProfile(context.Background(), 7, ProfileUpdate{Email: &email})

		assert.ErrorIs(t, err, apperrors.ErrEmailTaken)
		assert.Nil(t, user)
		mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("rehashes new password", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, uint(7)).Return(&model.User{ID: 7, PasswordHash: "old-hash"}, nil)
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

		password := "newpassword"
		svc := NewUserService(mockRepo, nil)
		user, err := svc.UpdateProfile(context.Background(), 7, ProfileUpdate{Password: &password})

		assert.NoError(t, err)
		assert.NotEqual(t, "old-hash", user.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)))
	})
}
