// Package queue defines message payloads exchanged over the message broker.
package queue

// Activity event types carried on the store.activity queue.
const (
	ActivityReservationCreated = "reservation.created"
	ActivityReviewCreated      = "review.created"
)

// StoreActivityEvent is published whenever a reservation or review is
// created for a store.  It carries enough information for downstream
// consumers to log or notify without querying the primary database; the
// consumer also uses it to recompute the store's aggregate counters.
type StoreActivityEvent struct {
	Type          string `json:"type"`
	StoreID       string `json:"store_id"`
	ReservationID string `json:"reservation_id,omitempty"`
	ReviewID      string `json:"review_id,omitempty"`
	GuideID       string `json:"guide_id,omitempty"`
	CustomerName  string `json:"customer_name"`
	TotalPrice    int    `json:"total_price,omitempty"`
	Rating        int    `json:"rating,omitempty"`
	OccurredAt    string `json:"occurred_at"`
}
