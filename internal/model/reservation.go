package model

import "time"

// Reservation status values.  A freshly created reservation is always
// confirmed with payment pending; the server overwrites whatever the caller
// sent for these two fields.
const (
	ReservationConfirmed = "confirmed"
	ReservationPending   = "pending"
	ReservationCancelled = "cancelled"
	ReservationCompleted = "completed"

	PaymentPending  = "pending"
	PaymentPaid     = "paid"
	PaymentRefunded = "refunded"
)

// Reservation records a customer booking against a store, optionally tied to
// a specific guide and experience program.  No cross-resource consistency is
// enforced on create: the referenced guide or program is not required to
// exist.
type Reservation struct {
	ID               string    `json:"id"`
	StoreID          string    `json:"storeId"`
	GuideID          string    `json:"guideId,omitempty"`
	ProgramID        string    `json:"programId,omitempty"`
	CustomerName     string    `json:"customerName"`
	CustomerEmail    string    `json:"customerEmail"`
	CustomerPhone    string    `json:"customerPhone,omitempty"`
	ParticipantCount int       `json:"participantCount"`
	ReservationDate  time.Time `json:"reservationDate"`
	TotalPrice       int       `json:"totalPrice"`
	Status           string    `json:"status"`
	PaymentStatus    string    `json:"paymentStatus"`
	SpecialRequests  string    `json:"specialRequests,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// ValidReservationStatus reports whether s is one of the allowed reservation
// states.
func ValidReservationStatus(s string) bool {
	switch s {
	case ReservationConfirmed, ReservationPending, ReservationCancelled, ReservationCompleted:
		return true
	}
	return false
}
