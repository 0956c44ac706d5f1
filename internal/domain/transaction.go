package domain

import "time"

const (
	TransactionCreated    Status = "CREATED"
	TransactionProcessing Status = "PROCESSING"
	TransactionSuccess    Status = "SUCCESS"
	TransactionFailed     Status = "FAILED"
)

// Transaction settles payment for a booking. Amount is in the smallest
// currency unit. SUCCESS and FAILED are terminal.
type Transaction struct {
	ID        string    `json:"transaction_id"`
	BookingID string    `json:"booking_id"`
	Amount    int64     `json:"amount"`
	Method    string    `json:"payment_method,omitempty"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func NewTransaction(id, bookingID string, amount int64, method string) (Transaction, error) {
	if bookingID == "" {
		return Transaction{}, ValidationError{Field: "booking_id", Msg: "must not be empty"}
	}
	if amount <= 0 {
		return Transaction{}, ValidationError{Field: "amount", Msg: "must be greater than zero"}
	}
	return Transaction{
		ID:        id,
		BookingID: bookingID,
		Amount:    amount,
		Method:    method,
		Status:    TransactionCreated,
		CreatedAt: time.Now().UTC(),
	}, nil
}

func (t *Transaction) Validate() error {
	if t.Status != TransactionCreated {
		return InvalidStateError{Resource: "transaction", From: t.Status, Msg: "only created transactions can be validated"}
	}
	t.Status = TransactionProcessing
	return nil
}

func (t *Transaction) ConfirmPayment() error {
	if t.Status != TransactionProcessing {
		return InvalidStateError{Resource: "transaction", From: t.Status, Msg: "only processing transactions can be confirmed"}
	}
	t.Status = TransactionSuccess
	return nil
}

func (t *Transaction) MarkFailed() error {
	if t.Status != TransactionProcessing {
		return InvalidStateError{Resource: "transaction", From: t.Status, Msg: "only processing transactions can be marked failed"}
	}
	t.Status = TransactionFailed
	return nil
}
