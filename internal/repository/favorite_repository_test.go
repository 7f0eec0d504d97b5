package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Sameer222006/flatfinder/internal/model"
)

func TestFavoriteRepository_CreateAndFind(t *testing.T) {
	db := newTestDB(t)
	repo := NewFavoriteRepository(db)
	ctx := context.Background()

	favorite := &model.Favorite{UserID: 1, PropertyID: 5}
	require.NoError(t, repo.Create(ctx, favorite))
	assert.NotZero(t, favorite.ID)

	found, err := repo.FindByUserAndProperty(ctx, 1, 5)
	assert.NoError(t, err)
	assert.Equal(t, favorite.ID, found.ID)

	_, err = repo.FindByUserAndProperty(ctx, 1, 6)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestFavoriteRepository_UniquePair(t *testing.T) {
	db := newTestDB(t)
	repo := NewFavoriteRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &model.Favorite{UserID: 1, PropertyID: 5}))

	// Second insert of the same pair trips the unique index.
	assert.Error(t, repo.Create(ctx, &model.Favorite{UserID: 1, PropertyID: 5}))

	// Different property for the same user is fine.
	assert.NoError(t, repo.Create(ctx, &model.Favorite{UserID: 1, PropertyID: 6}))
	// Same property for a different user is fine.
	assert.NoError(t, repo.Create(ctx, &model.Favorite{UserID: 2, PropertyID: 5}))
}

func TestFavoriteRepository_Delete(t *testing.T) {
	db := newTestDB(t)
	repo := NewFavoriteRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &model.Favorite{UserID: 1, PropertyID: 5}))

	assert.NoError(t, repo.DeleteByUserAndProperty(ctx, 1, 5))
	_, err := repo.FindByUserAndProperty(ctx, 1, 5)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// Deleting an absent pair is a silent no-op.
	assert.NoError(t, repo.DeleteByUserAndProperty(ctx, 1, 5))
}

func TestFavoriteRepository_ListByUser(t *testing.T) {
	db := newTestDB(t)
	repo := NewFavoriteRepository(db)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	favorites := []model.Favorite{
		{UserID: 1, PropertyID: 5, CreatedAt: base},
		{UserID: 1, PropertyID: 7, CreatedAt: base.Add(time.Minute)},
		{UserID: 2, PropertyID: 5, CreatedAt: base.Add(2 * time.Minute)},
	}
	require.NoError(t, db.Create(&favorites).Error)

	list, err := repo.ListByUser(ctx, 1)
	assert.NoError(t, err)
	require.Len(t, list, 2)
	// Newest saved first.
	assert.Equal(t, uint(7), list[0].PropertyID)
	assert.Equal(t, uint(5), list[1].PropertyID)
}
