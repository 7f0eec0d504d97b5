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

func seedMessages(t *testing.T, db *gorm.DB) {
	t.Helper()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	messages := []model.Message{
		{ID: 1, SenderID: 1, ReceiverID: 2, PropertyID: 10, Content: "hi", Read: true, CreatedAt: base},
		{ID: 2, SenderID: 2, ReceiverID: 1, PropertyID: 10, Content: "hello", Read: false, CreatedAt: base.Add(time.Minute)},
		{ID: 3, SenderID: 2, ReceiverID: 1, PropertyID: 10, Content: "still there?", Read: false, CreatedAt: base.Add(2 * time.Minute)},
		// Same pair, different property: a separate thread.
		{ID: 4, SenderID: 2, ReceiverID: 1, PropertyID: 11, Content: "about the other one", Read: false, CreatedAt: base.Add(3 * time.Minute)},
		// Unrelated pair.
		{ID: 5, SenderID: 3, ReceiverID: 4, PropertyID: 10, Content: "hey", Read: false, CreatedAt: base.Add(4 * time.Minute)},
	}
	require.NoError(t, db.Create(&messages).Error)
}

func messageIDs(messages []model.Message) []uint {
	ids := make([]uint, 0, len(messages))
	for _, m := range messages {
		ids = append(ids, m.ID)
	}
	return ids
}

func TestMessageRepository_ListInvolving(t *testing.T) {
	db := newTestDB(t)
	seedMessages(t, db)
	repo := NewMessageRepository(db)

	messages, err := repo.ListInvolving(context.Background(), 1)

	assert.NoError(t, err)
	assert.Equal(t, []uint{4, 3, 2, 1}, messageIDs(messages))
}

func TestMessageRepository_Thread(t *testing.T) {
	db := newTestDB(t)
	seedMessages(t, db)
	repo := NewMessageRepository(db)

	// Oldest first, both directions, one property only.
	messages, err := repo.Thread(context.Background(), 1, 2, 10)
	assert.NoError(t, err)
	assert.Equal(t, []uint{1, 2, 3}, messageIDs(messages))

	// Symmetric for the counterpart.
	mirror, err := repo.Thread(context.Background(), 2, 1, 10)
	assert.NoError(t, err)
	assert.Equal(t, []uint{1, 2, 3}, messageIDs(mirror))
}

func TestMessageRepository_MarkThreadRead(t *testing.T) {
	db := newTestDB(t)
	seedMessages(t, db)
	repo := NewMessageRepository(db)
	ctx := context.Background()

	// User 1 opens the thread with user 2 about property 10.
	require.NoError(t, repo.MarkThreadRead(ctx, 1, 2, 10))

	messages, err := repo.Thread(ctx, 1, 2, 10)
	assert.NoError(t, err)
	for _, m := range messages {
		assert.True(t, m.Read, "message %d", m.ID)
	}

	// The same pair's other thread stays unread.
	var other model.Message
	require.NoError(t, db.First(&other, 4).Error)
	assert.False(t, other.Read)

	// Unrelated users untouched.
	var unrelated model.Message
	require.NoError(t, db.First(&unrelated, 5).Error)
	assert.False(t, unrelated.Read)

	// Idempotent on a second open.
	assert.NoError(t, repo.MarkThreadRead(ctx, 1, 2, 10))
}
