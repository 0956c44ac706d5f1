package domain

import (
	"testing"
	"time"
)

func TestNewTripRejectsNonPositiveCapacity(t *testing.T) {
	if _, err := NewTrip("t1", "Bromo", "sunrise trip", 0); !IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, err := NewTrip("t1", "Bromo", "sunrise trip", -3); !IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestNewTripRejectsEmptyDestination(t *testing.T) {
	if _, err := NewTrip("t1", "   ", "desc", 5); !IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestSetScheduleRejectsReturnBeforeDeparture(t *testing.T) {
	trip, err := NewTrip("t1", "Bromo", "", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	dep := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	ret := dep.AddDate(0, 0, -2)
	if err := trip.SetSchedule(dep, ret); !IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if trip.Schedule != nil {
		t.Fatalf("schedule should stay unset after failed validation")
	}

	if err := trip.SetSchedule(dep, dep.AddDate(0, 0, 3)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if trip.Schedule == nil {
		t.Fatalf("schedule not set")
	}
}

func TestAssignGuideIsIdempotent(t *testing.T) {
	trip, _ := NewTrip("t1", "Bromo", "", 5)
	if err := trip.AssignGuide("g1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := trip.AssignGuide("g1"); err != nil {
		t.Fatalf("assigning the same guide twice should succeed, got %v", err)
	}
	if err := trip.AssignGuide("g2"); err != nil {
		t.Fatalf("guide overwrite should succeed, got %v", err)
	}
	if trip.GuideID != "g2" {
		t.Fatalf("guide not overwritten, got %s", trip.GuideID)
	}
}

func TestUpdateCapacityBelowBookedFails(t *testing.T) {
	trip, _ := NewTrip("t1", "Bromo", "", 5)
	if err := trip.ReserveSlots(3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := trip.UpdateCapacity(2); !IsCapacity(err) {
		t.Fatalf("expected capacity error, got %v", err)
	}
	if trip.Capacity != 5 {
		t.Fatalf("capacity mutated after failed update, got %d", trip.Capacity)
	}
	if err := trip.UpdateCapacity(3); err != nil {
		t.Fatalf("reducing to booked count should succeed, got %v", err)
	}
}

func TestUpdateItineraryRejectsEmpty(t *testing.T) {
	trip, _ := NewTrip("t1", "Bromo", "", 5)
	if err := trip.UpdateItinerary(nil); !IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if err := trip.UpdateItinerary([]string{"  ", ""}); !IsValidation(err) {
		t.Fatalf("expected validation error on blank-only activities, got %v", err)
	}
	if err := trip.UpdateItinerary([]string{"hiking", " sunrise point "}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(trip.Itinerary) != 2 || trip.Itinerary[1] != "sunrise point" {
		t.Fatalf("itinerary not replaced cleanly: %v", trip.Itinerary)
	}
}

func TestReserveAndReleaseSlotsKeepInvariant(t *testing.T) {
	trip, _ := NewTrip("t1", "Bromo", "", 4)

	if err := trip.ReserveSlots(0); !IsValidation(err) {
		t.Fatalf("expected validation error for zero count, got %v", err)
	}
	if err := trip.ReserveSlots(5); !IsCapacity(err) {
		t.Fatalf("expected capacity error, got %v", err)
	}
	if trip.Booked != 0 {
		t.Fatalf("booked mutated after failed reserve, got %d", trip.Booked)
	}

	if err := trip.ReserveSlots(4); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := trip.ReserveSlots(1); !IsCapacity(err) {
		t.Fatalf("expected capacity error at full trip, got %v", err)
	}

	// release saturates at zero
	trip.ReleaseSlots(10)
	if trip.Booked != 0 {
		t.Fatalf("release should saturate at zero, got %d", trip.Booked)
	}
	trip.ReleaseSlots(-1)
	if trip.Booked != 0 {
		t.Fatalf("negative release must be a no-op, got %d", trip.Booked)
	}
}

func TestBookedNeverExceedsCapacityUnderSequences(t *testing.T) {
	trip, _ := NewTrip("t1", "Bromo", "", 3)
	ops := []struct {
		reserve int
		release int
	}{
		{reserve: 2}, {release: 1}, {reserve: 2}, {reserve: 1}, {release: 5}, {reserve: 3},
	}
	for i, op := range ops {
		if op.reserve > 0 {
			_ = trip.ReserveSlots(op.reserve)
		}
		if op.release > 0 {
			trip.ReleaseSlots(op.release)
		}
		if trip.Booked < 0 || trip.Booked > trip.Capacity {
			t.Fatalf("invariant broken at step %d: booked=%d capacity=%d", i, trip.Booked, trip.Capacity)
		}
	}
}
