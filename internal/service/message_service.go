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

// MessageService handles per-property messaging and the conversation view
// derived from the flat message table.
type MessageService interface {
	Send(ctx context.Context, senderID, receiverID, propertyID uint, content string) (*model.Message, error)
	Conversations(ctx context.Context, userID uint) ([]model.ConversationSummary, error)
	Thread(ctx context.Context, userID, otherUserID, propertyID uint) ([]model.ThreadMessage, error)
}

type messageService struct {
	messageRepo  repository.MessageRepository
	userRepo     repository.UserRepository
	propertyRepo repository.PropertyRepository
	imageRepo    repository.ImageRepository
}

// NewMessageService creates a new message service.
func NewMessageService(
	messageRepo repository.MessageRepository,
	userRepo repository.UserRepository,
	propertyRepo repository.PropertyRepository,
	imageRepo repository.ImageRepository,
) MessageService {
	return &messageService{
		messageRepo:  messageRepo,
		userRepo:     userRepo,
		propertyRepo: propertyRepo,
		imageRepo:    imageRepo,
	}
}

// Send creates a message after verifying both the receiver and the
// property exist.
func (s *messageService) Send(ctx context.Context, senderID, receiverID, propertyID uint, content string) (*model.Message, error) {
	if senderID == receiverID {
		return nil, apperrors.ErrSelfMessage
	}

	if _, err := s.userRepo.FindByID(ctx, receiverID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	if _, err := s.propertyRepo.FindByID(ctx, propertyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPropertyNotFound
		}
		return nil, err
	}

	message := &model.Message{
		SenderID:   senderID,
		ReceiverID: receiverID,
		PropertyID: propertyID,
		Content:    content,
	}
	if err := s.messageRepo.Create(ctx, message); err != nil {
		return nil, fmt.Errorf("create message: %w", err)
	}
	return message, nil
}

// Conversations folds the user's messages, newest first, into one summary
// per (counterpart, property) pair. The first message seen per pair is its
// latest, so insertion order of pairs already reflects recency.
func (s *messageService) Conversations(ctx context.Context, userID uint) ([]model.ConversationSummary, error) {
	messages, err := s.messageRepo.ListInvolving(ctx, userID)
	if err != nil {
		return nil, err
	}

	type pairKey struct {
		otherUserID uint
		propertyID  uint
	}
	groups := make(map[pairKey]*model.ConversationSummary)
	order := make([]pairKey, 0)

	for i := range messages {
		msg := messages[i]
		otherUserID := msg.ReceiverID
		if msg.SenderID != userID {
			otherUserID = msg.SenderID
		}
		key := pairKey{otherUserID: otherUserID, propertyID: msg.PropertyID}

		summary, ok := groups[key]
		if !ok {
			last := msg
			summary = &model.ConversationSummary{
				OtherUserID: otherUserID,
				PropertyID:  msg.PropertyID,
				LastMessage: &last,
			}
			groups[key] = summary
			order = append(order, key)
		}
		if msg.SenderID != userID && !msg.Read {
			summary.UnreadCount++
		}
	}

	if len(order) == 0 {
		return []model.ConversationSummary{}, nil
	}

	otherUserIDs := make([]uint, 0, len(order))
	propertyIDs := make([]uint, 0, len(order))
	seenUsers := map[uint]struct{}{}
	seenProperties := map[uint]struct{}{}
	for _, key := range order {
		if _, ok := seenUsers[key.otherUserID]; !ok {
			seenUsers[key.otherUserID] = struct{}{}
			otherUserIDs = append(otherUserIDs, key.otherUserID)
		}
		if _, ok := seenProperties[key.propertyID]; !ok {
			seenProperties[key.propertyID] = struct{}{}
			propertyIDs = append(propertyIDs, key.propertyID)
		}
	}

	users, err := s.userRepo.FindByIDs(ctx, otherUserIDs)
	if err != nil {
		return nil, err
	}
	usersByID := make(map[uint]model.User, len(users))
	for _, u := range users {
		usersByID[u.ID] = u
	}

	properties, err := s.propertyRepo.FindByIDs(ctx, propertyIDs)
	if err != nil {
		return nil, err
	}
	propertiesByID := make(map[uint]model.Property, len(properties))
	for _, p := range properties {
		propertiesByID[p.ID] = p
	}

	primaryImages, err := s.imageRepo.FindPrimaryByPropertyIDs(ctx, propertyIDs)
	if err != nil {
		return nil, err
	}
	primaryByProperty := make(map[uint]model.PropertyImage, len(primaryImages))
	for _, img := range primaryImages {
		primaryByProperty[img.PropertyID] = img
	}

	results := make([]model.ConversationSummary, 0, len(order))
	for _, key := range order {
		summary := *groups[key]
		if u, ok := usersByID[key.otherUserID]; ok {
			user := u
			summary.OtherUser = &user
		}
		if p, ok := propertiesByID[key.propertyID]; ok {
			convProperty := model.ConversationProperty{Property: p}
			if img, ok := primaryByProperty[key.propertyID]; ok {
				image := img
				convProperty.PrimaryImage = &image
			}
			summary.Property = &convProperty
		}
		results = append(results, summary)
	}
	return results, nil
}

// Thread returns the full oldest-first message list between the user and
// the counterpart for one property, marking the counterpart's unread
// messages as read first so the response reflects the new state. The
// mark-read update is idempotent, so concurrent reads race benignly.
func (s *messageService) Thread(ctx context.Context, userID, otherUserID, propertyID uint) ([]model.ThreadMessage, error) {
	if err := s.messageRepo.MarkThreadRead(ctx, userID, otherUserID, propertyID); err != nil {
		return nil, fmt.Errorf("mark thread read: %w", err)
	}

	messages, err := s.messageRepo.Thread(ctx, userID, otherUserID, propertyID)
	if err != nil {
		return nil, err
	}

	users, err := s.userRepo.FindByIDs(ctx, []uint{userID, otherUserID})
	if err != nil {
		return nil, err
	}
	usersByID := make(map[uint]model.User, len(users))
	for _, u := range users {
		usersByID[u.ID] = u
	}

	results := make([]model.ThreadMessage, 0, len(messages))
	for _, msg := range messages {
		tm := model.ThreadMessage{Message: msg}
		if sender, ok := usersByID[msg.SenderID]; ok {
			u := sender
			tm.Sender = &u
		}
		results = append(results, tm)
	}
	return results, nil
}
