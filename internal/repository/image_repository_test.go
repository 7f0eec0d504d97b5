package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sameer222006/flatfinder/internal/model"
)

func TestImageRepository_AddPrimaryClearsPrevious(t *testing.T) {
	db := newTestDB(t)
	repo := NewImageRepository(db)
	ctx := context.Background()

	first := &model.PropertyImage{PropertyID: 5, URL: "https://img/a.jpg", IsPrimary: true}
	require.NoError(t, repo.Add(ctx, first))

	second := &model.PropertyImage{PropertyID: 5, URL: "https://img/b.jpg", IsPrimary: true}
	require.NoError(t, repo.Add(ctx, second))

	// A primary on another property must not be affected.
	other := &model.PropertyImage{PropertyID: 6, URL: "https://img/c.jpg", IsPrimary: true}
	require.NoError(t, repo.Add(ctx, other))

	images, err := repo.FindByPropertyID(ctx, 5)
	assert.NoError(t, err)
	require.Len(t, images, 2)

	primaries := 0
	for _, img := range images {
		if img.IsPrimary {
			primaries++
			assert.Equal(t, second.ID, img.ID)
		}
	}
	assert.Equal(t, 1, primaries)

	got, err := repo.FindByID(ctx, other.ID)
	assert.NoError(t, err)
	assert.True(t, got.IsPrimary)
}

func TestImageRepository_FindByPropertyID_PrimaryFirst(t *testing.T) {
	db := newTestDB(t)
	repo := NewImageRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, &model.PropertyImage{PropertyID: 5, URL: "https://img/a.jpg"}))
	require.NoError(t, repo.Add(ctx, &model.PropertyImage{PropertyID: 5, URL: "https://img/b.jpg", IsPrimary: true}))
	require.NoError(t, repo.Add(ctx, &model.PropertyImage{PropertyID: 5, URL: "https://img/c.jpg"}))

	images, err := repo.FindByPropertyID(ctx, 5)
	assert.NoError(t, err)
	require.Len(t, images, 3)
	assert.True(t, images[0].IsPrimary)
}

func TestImageRepository_FindPrimaryByPropertyIDs(t *testing.T) {
	db := newTestDB(t)
	repo := NewImageRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, &model.PropertyImage{PropertyID: 5, URL: "https://img/a.jpg", IsPrimary: true}))
	require.NoError(t, repo.Add(ctx, &model.PropertyImage{PropertyID: 5, URL: "https://img/b.jpg"}))
	require.NoError(t, repo.Add(ctx, &model.PropertyImage{PropertyID: 6, URL: "https://img/c.jpg"}))

	primaries, err := repo.FindPrimaryByPropertyIDs(ctx, []uint{5, 6})
	assert.NoError(t, err)
	require.Len(t, primaries, 1)
	assert.Equal(t, uint(5), primaries[0].PropertyID)
}

func TestImageRepository_Delete(t *testing.T) {
	db := newTestDB(t)
	repo := NewImageRepository(db)
	ctx := context.Background()

	image := &model.PropertyImage{PropertyID: 5, URL: "https://img/a.jpg"}
	require.NoError(t, repo.Add(ctx, image))

	assert.NoError(t, repo.Delete(ctx, image.ID))

	_, err := repo.FindByID(ctx, image.ID)
	assert.Error(t, err)
}
