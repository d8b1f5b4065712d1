package model

import "time"

// ExperienceProgram is a bookable activity offered by a sponsor store.
// Price is in whole yen; DurationMinutes is the planned length of one run.
type ExperienceProgram struct {
	ID              string    `json:"id"`
	StoreID         string    `json:"storeId"`
	ProgramName     string    `json:"programName"`
	Description     string    `json:"description,omitempty"`
	DurationMinutes int       `json:"durationMinutes"`
	Price           int       `json:"price"`
	MaxParticipants int       `json:"maxParticipants"`
	Languages       []string  `json:"languages"`
	Category        string    `json:"category,omitempty"`
	ImageURL        string    `json:"imageUrl,omitempty"`
	IsActive        bool      `json:"isActive"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
