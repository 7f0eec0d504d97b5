package model

import "time"

// User roles.
const (
	RoleTenant = "tenant"
	RoleOwner  = "owner"
)

// User represents a registered tenant or property owner.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;size:64;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Name         string    `json:"name" gorm:"size:255;not null"`
	Avatar       string    `json:"avatar,omitempty" gorm:"size:512"`
	Bio          string    `json:"bio,omitempty" gorm:"type:text"`
	Phone        string    `json:"phone,omitempty" gorm:"size:32"`
	Role         string    `json:"role" gorm:"size:16;not null;default:'tenant';index"`
	CreatedAt    time.Time `json:"createdAt"`
}
