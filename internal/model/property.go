package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Property represents a rental listing owned by exactly one user.
type Property struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	OwnerID     uint            `json:"ownerId" gorm:"not null;index"`
	Title       string          `json:"title" gorm:"size:255;not null"`
	Description string          `json:"description" gorm:"type:text;not null"`
	Type        string          `json:"type" gorm:"size:64;not null;index"` // apartment, house, studio, condo, ...
	Address     string          `json:"address" gorm:"size:255;not null"`
	City        string          `json:"city" gorm:"size:128;not null;index"`
	State       string          `json:"state" gorm:"size:64;not null"`
	ZipCode     string          `json:"zipCode" gorm:"size:16;not null"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null;index"`
	Bedrooms    int             `json:"bedrooms" gorm:"not null"`
	Bathrooms   decimal.Decimal `json:"bathrooms" gorm:"type:decimal(3,1);not null"`
	Area        int             `json:"area" gorm:"not null"` // sq ft
	Available   bool            `json:"available" gorm:"not null;default:true"`
	Latitude    decimal.Decimal `json:"latitude" gorm:"type:decimal(10,6);not null"`
	Longitude   decimal.Decimal `json:"longitude" gorm:"type:decimal(10,6);not null"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// PropertyImage belongs to one property. At most one image per property
// should carry IsPrimary; the image repository enforces this transactionally.
type PropertyImage struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	PropertyID uint      `json:"propertyId" gorm:"not null;index"`
	URL        string    `json:"url" gorm:"size:1024;not null"`
	IsPrimary  bool      `json:"isPrimary" gorm:"not null;default:false"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Amenity is a named, iconized tag shared across properties.
type Amenity struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"uniqueIndex;size:128;not null"`
	Icon string `json:"icon" gorm:"size:64;not null"`
}

// PropertyAmenity links a property to an amenity.
type PropertyAmenity struct {
	ID         uint `json:"id" gorm:"primaryKey"`
	PropertyID uint `json:"propertyId" gorm:"not null;uniqueIndex:idx_property_amenity_pair"`
	AmenityID  uint `json:"amenityId" gorm:"not null;uniqueIndex:idx_property_amenity_pair;index"`
}

// SearchFilter carries the resolved search predicates. Absent optional
// fields mean "no filter"; the "any" sentinel is handled at the HTTP
// boundary and never reaches this type.
type SearchFilter struct {
	Location   string
	Type       string
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
	Bedrooms   *int
	Bathrooms  *decimal.Decimal
	AmenityIDs []uint
}

// PropertyDetails is a property enriched for list and detail responses.
type PropertyDetails struct {
	Property
	Images     []PropertyImage `json:"images"`
	Owner      *User           `json:"owner,omitempty"`
	Amenities  []Amenity       `json:"amenities,omitempty"`
	IsFavorite *bool           `json:"isFavorite,omitempty"`
}
