package model

import "time"

// Review is customer feedback for a store, optionally referencing the guide
// and the reservation it came from.  Rating is a 1-5 integer.
type Review struct {
	ID            string    `json:"id"`
	StoreID       string    `json:"storeId"`
	GuideID       string    `json:"guideId,omitempty"`
	ReservationID string    `json:"reservationId,omitempty"`
	CustomerName  string    `json:"customerName"`
	Rating        int       `json:"rating"`
	Comment       string    `json:"comment,omitempty"`
	IsPublic      bool      `json:"isPublic"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
