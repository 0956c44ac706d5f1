package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"opentrip/internal/domain"
)

type TransactionDTO struct {
	ID        string `json:"transaction_id"`
	BookingID string `json:"booking_id"`
	Amount    int64  `json:"amount"`
	Method    string `json:"payment_method,omitempty"`
	Status    string `json:"status"`
}

func transactionDTO(t domain.Transaction) TransactionDTO {
	return TransactionDTO{
		ID:        t.ID,
		BookingID: t.BookingID,
		Amount:    t.Amount,
		Method:    t.Method,
		Status:    string(t.Status),
	}
}

type createTransactionRequest struct {
	BookingID string `json:"booking_id"`
	Amount    int64  `json:"amount"`
	Method    string `json:"payment_method"`
}

// POST /api/opentrip/transactions
func (a API) CreateTransaction(c *gin.Context) {
	var req createTransactionRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	txn, err := a.payments(c).CreateTransaction(req.BookingID, req.Amount, req.Method)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, transactionDTO(txn))
}

// GET /api/opentrip/transactions/:id
func (a API) GetTransaction(c *gin.Context) {
	txn, err := a.payments(c).GetTransaction(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, transactionDTO(txn))
}

// GET /api/opentrip/transactions
func (a API) ListTransactions(c *gin.Context) {
	txns, err := a.payments(c).ListTransactions()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	out := make([]TransactionDTO, 0, len(txns))
	for _, t := range txns {
		out = append(out, transactionDTO(t))
	}
	c.JSON(http.StatusOK, out)
}

// POST /api/opentrip/transactions/:id/validate
func (a API) ValidateTransaction(c *gin.Context) {
	txn, err := a.payments(c).ValidateTransaction(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":     "transaksi tervalidasi",
		"transaction": transactionDTO(txn),
	})
}

// POST /api/opentrip/transactions/:id/confirm
func (a API) ConfirmTransaction(c *gin.Context) {
	txn, err := a.payments(c).ConfirmPayment(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":     "pembayaran berhasil dikonfirmasi",
		"transaction": transactionDTO(txn),
	})
}

// POST /api/opentrip/transactions/:id/refund
func (a API) RefundTransaction(c *gin.Context) {
	txn, err := a.payments(c).MarkFailed(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":     "pembayaran digagalkan dan booking dibatalkan",
		"transaction": transactionDTO(txn),
	})
}
