package model

import "time"

// Message is a directed message between two users, scoped to one property.
// Rows are immutable except Read, which transitions false to true when the
// receiver opens the thread. The column is named is_read because READ is a
// reserved word in MySQL.
type Message struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	SenderID   uint      `json:"senderId" gorm:"not null;index"`
	ReceiverID uint      `json:"receiverId" gorm:"not null;index"`
	PropertyID uint      `json:"propertyId" gorm:"not null;index"`
	Content    string    `json:"content" gorm:"type:text;not null"`
	Read       bool      `json:"read" gorm:"column:is_read;not null;default:false"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ConversationProperty is the property summary attached to a conversation,
// carrying only the primary image.
type ConversationProperty struct {
	Property
	PrimaryImage *PropertyImage `json:"primaryImage,omitempty"`
}

// ConversationSummary is one derived conversation: the set of messages
// between the current user and one counterpart about one property.
type ConversationSummary struct {
	OtherUserID uint                  `json:"otherUserId"`
	PropertyID  uint                  `json:"propertyId"`
	LastMessage *Message              `json:"lastMessage"`
	UnreadCount int                   `json:"unreadCount"`
	OtherUser   *User                 `json:"otherUser,omitempty"`
	Property    *ConversationProperty `json:"property,omitempty"`
}

// ThreadMessage is a message enriched with its sender's profile.
type ThreadMessage struct {
	Message
	Sender *User `json:"sender,omitempty"`
}
