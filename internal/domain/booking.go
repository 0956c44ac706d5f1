package domain

import "time"

const (
	BookingPending   Status = "PENDING"
	BookingConfirmed Status = "CONFIRMED"
	BookingCancelled Status = "CANCELLED"
)

// Booking references its Trip by ID only; slot accounting lives on the Trip
// and is orchestrated by the booking service.
type Booking struct {
	ID           string    `json:"booking_id"`
	TripID       string    `json:"trip_id"`
	Participants int       `json:"participants"`
	Status       Status    `json:"status"`
	CancelReason string    `json:"cancel_reason,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func NewBooking(id, tripID string, participants int) (Booking, error) {
	if tripID == "" {
		return Booking{}, ValidationError{Field: "trip_id", Msg: "must not be empty"}
	}
	if participants <= 0 {
		return Booking{}, ValidationError{Field: "participants", Msg: "must be greater than zero"}
	}
	return Booking{
		ID:           id,
		TripID:       tripID,
		Participants: participants,
		Status:       BookingPending,
		CreatedAt:    time.Now().UTC(),
	}, nil
}

func (b *Booking) Confirm() error {
	if b.Status != BookingPending {
		return InvalidStateError{Resource: "booking", From: b.Status, Msg: "only pending bookings can be confirmed"}
	}
	b.Status = BookingConfirmed
	return nil
}

func (b *Booking) Cancel(reason string) error {
	if b.Status == BookingCancelled {
		return InvalidStateError{Resource: "booking", From: b.Status, Msg: "booking is already cancelled"}
	}
	b.Status = BookingCancelled
	b.CancelReason = reason
	return nil
}
