package model

import "time"

// Tourism guide lifecycle states.
const (
	GuideStatusPending  = "pending"
	GuideStatusActive   = "active"
	GuideStatusInactive = "inactive"
)

// TourismGuide represents an individual tour guide affiliated with exactly
// one sponsor store.  Languages are ISO codes; Specialties is a free-form
// comma-separated tag list as entered at registration.
type TourismGuide struct {
	ID              string    `json:"id"`
	StoreID         string    `json:"storeId"`
	GuideName       string    `json:"guideName"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone,omitempty"`
	Languages       []string  `json:"languages"`
	Specialties     string    `json:"specialties,omitempty"`
	Introduction    string    `json:"introduction,omitempty"`
	Experience      string    `json:"experience,omitempty"`
	HourlyRate      int       `json:"hourlyRate"`
	Availability    string    `json:"availability,omitempty"`
	Status          string    `json:"status"`
	ProfileImageURL string    `json:"profileImageUrl,omitempty"`
	TotalBookings   int       `json:"totalBookings"`
	AverageRating   float64   `json:"averageRating"`
	IsAvailable     bool      `json:"isAvailable"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
