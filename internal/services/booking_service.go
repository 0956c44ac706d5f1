package services

import (
	"fmt"

	"github.com/google/uuid"

	"opentrip/internal/domain"
	"opentrip/internal/storage"
	"opentrip/internal/utils"
)

// BookingService orchestrates the booking/trip consistency rule: every
// reservation change mutates local copies first and persists only after
// all domain checks passed.
type BookingService struct {
	Bookings  storage.Store[domain.Booking]
	Trips     storage.Store[domain.Trip]
	RequestID string
}

// CreateBooking reserves slots on the referenced trip and stores the
// booking as PENDING. A capacity failure leaves both aggregates untouched.
func (s BookingService) CreateBooking(tripID string, participants int) (domain.Booking, error) {
	trip, err := s.Trips.Get(tripID)
	if err != nil {
		return domain.Booking{}, err
	}

	booking, err := domain.NewBooking(uuid.NewString(), tripID, participants)
	if err != nil {
		return domain.Booking{}, err
	}
	if err := trip.ReserveSlots(participants); err != nil {
		return domain.Booking{}, err
	}

	if err := s.Trips.Save(trip.ID, trip); err != nil {
		return domain.Booking{}, err
	}
	if err := s.Bookings.Save(booking.ID, booking); err != nil {
		// roll the reservation back so the trip does not leak slots
		trip.ReleaseSlots(participants)
		_ = s.Trips.Save(trip.ID, trip)
		return domain.Booking{}, err
	}

	utils.LogEvent(s.RequestID, "booking", "create",
		fmt.Sprintf("booking_id=%s trip_id=%s participants=%d", booking.ID, tripID, participants))
	return booking, nil
}

func (s BookingService) GetBooking(id string) (domain.Booking, error) {
	return s.Bookings.Get(id)
}

func (s BookingService) ListBookings() ([]domain.Booking, error) {
	return s.Bookings.List()
}

func (s BookingService) ConfirmBooking(id string) (domain.Booking, error) {
	booking, err := s.Bookings.Get(id)
	if err != nil {
		return domain.Booking{}, err
	}
	if err := booking.Confirm(); err != nil {
		return domain.Booking{}, err
	}
	if err := s.Bookings.Save(booking.ID, booking); err != nil {
		return domain.Booking{}, err
	}
	utils.LogEvent(s.RequestID, "booking", "confirm", "booking_id="+booking.ID)
	return booking, nil
}

// CancelBooking releases the reserved slots back to the trip in the same
// logical operation.
func (s BookingService) CancelBooking(id, reason string) (domain.Booking, error) {
	booking, err := s.Bookings.Get(id)
	if err != nil {
		return domain.Booking{}, err
	}
	if err := booking.Cancel(reason); err != nil {
		return domain.Booking{}, err
	}

	trip, err := s.Trips.Get(booking.TripID)
	if err != nil {
		return domain.Booking{}, err
	}
	trip.ReleaseSlots(booking.Participants)

	if err := s.Trips.Save(trip.ID, trip); err != nil {
		return domain.Booking{}, err
	}
	if err := s.Bookings.Save(booking.ID, booking); err != nil {
		return domain.Booking{}, err
	}

	utils.LogEvent(s.RequestID, "booking", "cancel",
		fmt.Sprintf("booking_id=%s released=%d", booking.ID, booking.Participants))
	return booking, nil
}
