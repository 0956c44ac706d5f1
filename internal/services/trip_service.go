package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"opentrip/internal/domain"
	"opentrip/internal/storage"
	"opentrip/internal/utils"
)

// TripService owns trip lifecycle operations. Slot accounting is never
// touched here directly; BookingService orchestrates it.
type TripService struct {
	Trips     storage.Store[domain.Trip]
	RequestID string
}

func (s TripService) CreateTrip(ownerID, destination, description string, capacity int) (domain.Trip, error) {
	trip, err := domain.NewTrip(uuid.NewString(), destination, description, capacity)
	if err != nil {
		return domain.Trip{}, err
	}
	trip.OwnerID = ownerID
	if err := s.Trips.Save(trip.ID, trip); err != nil {
		return domain.Trip{}, err
	}
	utils.LogEvent(s.RequestID, "trip", "create", fmt.Sprintf("trip_id=%s capacity=%d", trip.ID, capacity))
	return trip, nil
}

func (s TripService) GetTrip(id string) (domain.Trip, error) {
	return s.Trips.Get(id)
}

func (s TripService) ListTrips() ([]domain.Trip, error) {
	return s.Trips.List()
}

func (s TripService) SetSchedule(id string, departure, ret time.Time) (domain.Trip, error) {
	trip, err := s.Trips.Get(id)
	if err != nil {
		return domain.Trip{}, err
	}
	if err := trip.SetSchedule(departure, ret); err != nil {
		return domain.Trip{}, err
	}
	if err := s.Trips.Save(trip.ID, trip); err != nil {
		return domain.Trip{}, err
	}
	utils.LogEvent(s.RequestID, "trip", "set_schedule", "trip_id="+trip.ID)
	return trip, nil
}

func (s TripService) AssignGuide(id, guideID string) (domain.Trip, error) {
	trip, err := s.Trips.Get(id)
	if err != nil {
		return domain.Trip{}, err
	}
	if err := trip.AssignGuide(guideID); err != nil {
		return domain.Trip{}, err
	}
	if err := s.Trips.Save(trip.ID, trip); err != nil {
		return domain.Trip{}, err
	}
	utils.LogEvent(s.RequestID, "trip", "assign_guide", fmt.Sprintf("trip_id=%s guide_id=%s", trip.ID, guideID))
	return trip, nil
}

func (s TripService) UpdateCapacity(id string, newCapacity int) (domain.Trip, error) {
	trip, err := s.Trips.Get(id)
	if err != nil {
		return domain.Trip{}, err
	}
	if err := trip.UpdateCapacity(newCapacity); err != nil {
		return domain.Trip{}, err
	}
	if err := s.Trips.Save(trip.ID, trip); err != nil {
		return domain.Trip{}, err
	}
	utils.LogEvent(s.RequestID, "trip", "update_capacity", fmt.Sprintf("trip_id=%s capacity=%d", trip.ID, newCapacity))
	return trip, nil
}

func (s TripService) UpdateItinerary(id string, activities []string) (domain.Trip, error) {
	trip, err := s.Trips.Get(id)
	if err != nil {
		return domain.Trip{}, err
	}
	if err := trip.UpdateItinerary(activities); err != nil {
		return domain.Trip{}, err
	}
	if err := s.Trips.Save(trip.ID, trip); err != nil {
		return domain.Trip{}, err
	}
	utils.LogEvent(s.RequestID, "trip", "update_itinerary", "trip_id="+trip.ID)
	return trip, nil
}
