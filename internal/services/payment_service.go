package services

import (
	"fmt"

	"github.com/google/uuid"

	"opentrip/internal/domain"
	"opentrip/internal/storage"
	"opentrip/internal/utils"
)

// PaymentService drives the transaction state machine and the settlement
// side effects on the linked booking. It never reaches into the booking
// aggregate directly; all cross-aggregate work goes through the stores.
type PaymentService struct {
	Transactions storage.Store[domain.Transaction]
	Bookings     storage.Store[domain.Booking]
	Trips        storage.Store[domain.Trip]
	RequestID    string
}

func (s PaymentService) CreateTransaction(bookingID string, amount int64, method string) (domain.Transaction, error) {
	if _, err := s.Bookings.Get(bookingID); err != nil {
		if domain.IsNotFound(err) {
			return domain.Transaction{}, domain.ValidationError{Field: "booking_id", Msg: "booking does not exist"}
		}
		return domain.Transaction{}, err
	}

	txn, err := domain.NewTransaction(uuid.NewString(), bookingID, amount, method)
	if err != nil {
		return domain.Transaction{}, err
	}
	if err := s.Transactions.Save(txn.ID, txn); err != nil {
		return domain.Transaction{}, err
	}
	utils.LogEvent(s.RequestID, "payment", "create",
		fmt.Sprintf("transaction_id=%s booking_id=%s amount=%d", txn.ID, bookingID, amount))
	return txn, nil
}

func (s PaymentService) GetTransaction(id string) (domain.Transaction, error) {
	return s.Transactions.Get(id)
}

func (s PaymentService) ListTransactions() ([]domain.Transaction, error) {
	return s.Transactions.List()
}

// FindByBookingID scans the keyed store; there is no query layer by design.
func (s PaymentService) FindByBookingID(bookingID string) (domain.Transaction, error) {
	all, err := s.Transactions.List()
	if err != nil {
		return domain.Transaction{}, err
	}
	for _, txn := range all {
		if txn.BookingID == bookingID {
			return txn, nil
		}
	}
	return domain.Transaction{}, domain.NotFoundError{Resource: "transaction"}
}

func (s PaymentService) ValidateTransaction(id string) (domain.Transaction, error) {
	txn, err := s.Transactions.Get(id)
	if err != nil {
		return domain.Transaction{}, err
	}
	if err := txn.Validate(); err != nil {
		return domain.Transaction{}, err
	}
	if err := s.Transactions.Save(txn.ID, txn); err != nil {
		return domain.Transaction{}, err
	}
	utils.LogEvent(s.RequestID, "payment", "validate", "transaction_id="+txn.ID)
	return txn, nil
}

// ConfirmPayment settles a processing transaction and confirms the linked
// booking. A booking that cannot be confirmed blocks the settlement; the
// transaction stays PROCESSING.
func (s PaymentService) ConfirmPayment(id string) (domain.Transaction, error) {
	txn, err := s.Transactions.Get(id)
	if err != nil {
		return domain.Transaction{}, err
	}
	if err := txn.ConfirmPayment(); err != nil {
		return domain.Transaction{}, err
	}

	booking, err := s.Bookings.Get(txn.BookingID)
	if err != nil {
		return domain.Transaction{}, err
	}
	if err := booking.Confirm(); err != nil {
		return domain.Transaction{}, err
	}

	if err := s.Bookings.Save(booking.ID, booking); err != nil {
		return domain.Transaction{}, err
	}
	if err := s.Transactions.Save(txn.ID, txn); err != nil {
		return domain.Transaction{}, err
	}

	utils.LogEvent(s.RequestID, "payment", "confirm",
		fmt.Sprintf("transaction_id=%s booking_id=%s", txn.ID, booking.ID))
	return txn, nil
}

// MarkFailed refunds a processing transaction and cancels the linked
// booking, releasing its trip slots. A booking that was already cancelled
// through another path does not block the refund.
func (s PaymentService) MarkFailed(id string) (domain.Transaction, error) {
	txn, err := s.Transactions.Get(id)
	if err != nil {
		return domain.Transaction{}, err
	}
	if err := txn.MarkFailed(); err != nil {
		return domain.Transaction{}, err
	}

	booking, err := s.Bookings.Get(txn.BookingID)
	if err != nil {
		return domain.Transaction{}, err
	}
	if booking.Status != domain.BookingCancelled {
		if err := booking.Cancel("payment failed"); err != nil {
			return domain.Transaction{}, err
		}
		trip, err := s.Trips.Get(booking.TripID)
		if err != nil {
			return domain.Transaction{}, err
		}
		trip.ReleaseSlots(booking.Participants)
		if err := s.Trips.Save(trip.ID, trip); err != nil {
			return domain.Transaction{}, err
		}
		if err := s.Bookings.Save(booking.ID, booking); err != nil {
			return domain.Transaction{}, err
		}
	}

	if err := s.Transactions.Save(txn.ID, txn); err != nil {
		return domain.Transaction{}, err
	}

	utils.LogEvent(s.RequestID, "payment", "mark_failed",
		fmt.Sprintf("transaction_id=%s booking_id=%s", txn.ID, booking.ID))
	return txn, nil
}
