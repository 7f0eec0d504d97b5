package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Sameer222006/flatfinder/internal/model"
)

// MessageRepository defines message persistence operations. Conversations
// have no table of their own; they are derived from these queries.
type MessageRepository interface {
	Create(ctx context.Context, message *model.Message) error
	// ListInvolving returns every message sent or received by the user,
	// newest first.
	ListInvolving(ctx context.Context, userID uint) ([]model.Message, error)
	// Thread returns all messages between the two users about the property,
	// oldest first.
	Thread(ctx context.Context, userID, otherUserID, propertyID uint) ([]model.Message, error)
	// MarkThreadRead flips unread messages from sender to receiver in the
	// property's thread to read. The is_read = false predicate makes the
	// operation idempotent under concurrent thread reads.
	MarkThreadRead(ctx context.Context, receiverID, senderID, propertyID uint) error
}

type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository creates a new message repository.
func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(ctx context.Context, message *model.Message) error {
	return r.db.WithContext(ctx).Create(message).Error
}

func (r *messageRepository) ListInvolving(ctx context.Context, userID uint) ([]model.Message, error) {
	var messages []model.Message
	err := r.db.WithContext(ctx).
		Where("sender_id = ? OR receiver_id = ?", userID, userID).
		Order("created_at DESC").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *messageRepository) Thread(ctx context.Context, userID, otherUserID, propertyID uint) ([]model.Message, error) {
	var messages []model.Message
	err := r.db.WithContext(ctx).
		Where("property_id = ?", propertyID).
		Where(
			"(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			userID, otherUserID, otherUserID, userID,
		).
		Order("created_at ASC").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *messageRepository) MarkThreadRead(ctx context.Context, receiverID, senderID, propertyID uint) error {
	return r.db.WithContext(ctx).
		Model(&model.Message{}).
		Where("sender_id = ? AND receiver_id = ? AND property_id = ? AND is_read = ?",
			senderID, receiverID, propertyID, false).
		Update("is_read", true).Error
}
