package domain

import "testing"

func TestNewBookingValidation(t *testing.T) {
	if _, err := NewBooking("b1", "", 2); !IsValidation(err) {
		t.Fatalf("expected validation error for empty trip id, got %v", err)
	}
	if _, err := NewBooking("b1", "t1", 0); !IsValidation(err) {
		t.Fatalf("expected validation error for zero participants, got %v", err)
	}
	b, err := NewBooking("b1", "t1", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Status != BookingPending {
		t.Fatalf("new booking must be pending, got %s", b.Status)
	}
}

func TestBookingConfirmOnlyFromPending(t *testing.T) {
	b, _ := NewBooking("b1", "t1", 2)
	if err := b.Confirm(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Status != BookingConfirmed {
		t.Fatalf("expected CONFIRMED, got %s", b.Status)
	}
	if err := b.Confirm(); !IsInvalidState(err) {
		t.Fatalf("expected invalid state error on double confirm, got %v", err)
	}
	if b.Status != BookingConfirmed {
		t.Fatalf("status mutated by failed transition, got %s", b.Status)
	}
}

func TestBookingCancelFromPendingAndConfirmed(t *testing.T) {
	pending, _ := NewBooking("b1", "t1", 2)
	if err := pending.Cancel("changed plans"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pending.Status != BookingCancelled || pending.CancelReason != "changed plans" {
		t.Fatalf("cancel from pending broken: %+v", pending)
	}

	confirmed, _ := NewBooking("b2", "t1", 1)
	_ = confirmed.Confirm()
	if err := confirmed.Cancel(""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if confirmed.Status != BookingCancelled {
		t.Fatalf("expected CANCELLED, got %s", confirmed.Status)
	}
}

func TestBookingCancelledIsTerminal(t *testing.T) {
	b, _ := NewBooking("b1", "t1", 2)
	_ = b.Cancel("first")
	if err := b.Cancel("again"); !IsInvalidState(err) {
		t.Fatalf("expected invalid state error, got %v", err)
	}
	if err := b.Confirm(); !IsInvalidState(err) {
		t.Fatalf("cancelled booking must not be confirmable, got %v", err)
	}
	if b.CancelReason != "first" {
		t.Fatalf("failed cancel mutated reason: %s", b.CancelReason)
	}
}
