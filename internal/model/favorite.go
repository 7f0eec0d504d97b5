package model

import "time"

// Favorite records a user's saved property. The composite unique index
// makes duplicate adds race-safe: a concurrent second insert fails at the
// database and the caller re-reads the existing row.
type Favorite struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	UserID     uint      `json:"userId" gorm:"not null;uniqueIndex:idx_favorite_user_property"`
	PropertyID uint      `json:"propertyId" gorm:"not null;uniqueIndex:idx_favorite_user_property;index"`
	CreatedAt  time.Time `json:"createdAt"`
}
