package model

import "time"

// Sponsor store lifecycle states.  New stores created through the database
// backend start as StatusPending until reviewed; the memory backend activates
// them immediately so the demo flow works without an operations step.
const (
	StoreStatusPending   = "pending"
	StoreStatusActive    = "active"
	StoreStatusSuspended = "suspended"
)

// SponsorStore represents a business entity offering tours.  It owns guides,
// experience programs, reservations and reviews.  The aggregate counters
// (TotalViews, TotalBookings, AverageRating) are never written by request
// handlers; they are recomputed by the activity consumer.
//
// Fields map 1:1 onto the sponsor_stores table.
type SponsorStore struct {
	ID            string    `json:"id"`
	StoreName     string    `json:"storeName"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone,omitempty"`
	Address       string    `json:"address,omitempty"`
	Description   string    `json:"description,omitempty"`
	Category      string    `json:"category,omitempty"`
	BusinessHours string    `json:"businessHours,omitempty"`
	Website       string    `json:"website,omitempty"`
	Status        string    `json:"status"`
	LogoURL       string    `json:"logoUrl,omitempty"`
	CoverImageURL string    `json:"coverImageUrl,omitempty"`
	OwnerUserID   string    `json:"ownerUserId,omitempty"`
	TotalViews    int       `json:"totalViews"`
	TotalBookings int       `json:"totalBookings"`
	AverageRating float64   `json:"averageRating"`
	IsActive      bool      `json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// StoreUpdate carries the optional fields of a shallow-merge store update.
// Nil pointers leave the stored value untouched.
type StoreUpdate struct {
	StoreName     *string `json:"storeName"`
	Phone         *string `json:"phone"`
	Address       *string `json:"address"`
	Description   *string `json:"description"`
	Category      *string `json:"category"`
	BusinessHours *string `json:"businessHours"`
	Website       *string `json:"website"`
	Status        *string `json:"status"`
	LogoURL       *string `json:"logoUrl"`
	CoverImageURL *string `json:"coverImageUrl"`
	IsActive      *bool   `json:"isActive"`
}
