package domain

import (
	"strings"
	"time"
)

// Schedule holds the departure/return window of a trip. Set once via SetSchedule.
type Schedule struct {
	Departure time.Time `json:"departure"`
	Return    time.Time `json:"return"`
}

// Trip is the aggregate root owning capacity, schedule, guide and itinerary.
// Booked never exceeds Capacity; only ReserveSlots/ReleaseSlots move it.
type Trip struct {
	ID          string    `json:"trip_id"`
	Destination string    `json:"destination"`
	Description string    `json:"description"`
	Capacity    int       `json:"capacity"`
	Booked      int       `json:"booked"`
	Schedule    *Schedule `json:"schedule,omitempty"`
	GuideID     string    `json:"guide_id,omitempty"`
	Itinerary   []string  `json:"itinerary,omitempty"`
	OwnerID     string    `json:"owner_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewTrip(id, destination, description string, capacity int) (Trip, error) {
	if strings.TrimSpace(destination) == "" {
		return Trip{}, ValidationError{Field: "destination", Msg: "must not be empty"}
	}
	if capacity <= 0 {
		return Trip{}, ValidationError{Field: "capacity", Msg: "must be greater than zero"}
	}
	return Trip{
		ID:          id,
		Destination: strings.TrimSpace(destination),
		Description: strings.TrimSpace(description),
		Capacity:    capacity,
		CreatedAt:   time.Now().UTC(),
	}, nil
}

func (t *Trip) SetSchedule(departure, ret time.Time) error {
	if departure.IsZero() || ret.IsZero() {
		return ValidationError{Field: "schedule", Msg: "departure and return are required"}
	}
	if ret.Before(departure) {
		return ValidationError{Field: "schedule", Msg: "return date precedes departure"}
	}
	t.Schedule = &Schedule{Departure: departure, Return: ret}
	return nil
}

// AssignGuide overwrites the guide reference; assigning the same guide twice is a no-op.
func (t *Trip) AssignGuide(guideID string) error {
	guideID = strings.TrimSpace(guideID)
	if guideID == "" {
		return ValidationError{Field: "guide_id", Msg: "must not be empty"}
	}
	t.GuideID = guideID
	return nil
}

func (t *Trip) UpdateCapacity(newCapacity int) error {
	if newCapacity <= 0 {
		return ValidationError{Field: "capacity", Msg: "must be greater than zero"}
	}
	if newCapacity < t.Booked {
		return CapacityError{TripID: t.ID, Msg: "cannot reduce capacity below booked slots"}
	}
	t.Capacity = newCapacity
	return nil
}

func (t *Trip) UpdateItinerary(activities []string) error {
	clean := make([]string, 0, len(activities))
	for _, a := range activities {
		a = strings.TrimSpace(a)
		if a != "" {
			clean = append(clean, a)
		}
	}
	if len(clean) == 0 {
		return ValidationError{Field: "itinerary", Msg: "must contain at least one activity"}
	}
	t.Itinerary = clean
	return nil
}

// ReserveSlots is invoked only by booking orchestration.
func (t *Trip) ReserveSlots(count int) error {
	if count <= 0 {
		return ValidationError{Field: "participants", Msg: "must be greater than zero"}
	}
	if t.Booked+count > t.Capacity {
		return CapacityError{TripID: t.ID, Msg: "not enough available slots"}
	}
	t.Booked += count
	return nil
}

// ReleaseSlots gives reserved slots back, saturating at zero.
func (t *Trip) ReleaseSlots(count int) {
	if count <= 0 {
		return
	}
	t.Booked -= count
	if t.Booked < 0 {
		t.Booked = 0
	}
}

func (t Trip) AvailableSlots() int {
	return t.Capacity - t.Booked
}

func (t Trip) IsAvailableForBooking() bool {
	return t.Booked < t.Capacity
}
