package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"opentrip/internal/domain"
)

type BookingDTO struct {
	ID           string `json:"booking_id"`
	TripID       string `json:"trip_id"`
	Participants int    `json:"participants"`
	Status       string `json:"status"`
	CancelReason string `json:"cancel_reason,omitempty"`
}

func bookingDTO(b domain.Booking) BookingDTO {
	return BookingDTO{
		ID:           b.ID,
		TripID:       b.TripID,
		Participants: b.Participants,
		Status:       string(b.Status),
		CancelReason: b.CancelReason,
	}
}

type createBookingRequest struct {
	TripID       string `json:"trip_id"`
	Participants int    `json:"participants"`
}

// POST /api/opentrip/bookings
func (a API) CreateBooking(c *gin.Context) {
	var req createBookingRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	booking, err := a.bookings(c).CreateBooking(req.TripID, req.Participants)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, bookingDTO(booking))
}

// GET /api/opentrip/bookings/:id
func (a API) GetBooking(c *gin.Context) {
	booking, err := a.bookings(c).GetBooking(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookingDTO(booking))
}

// GET /api/opentrip/bookings
func (a API) ListBookings(c *gin.Context) {
	bookings, err := a.bookings(c).ListBookings()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	out := make([]BookingDTO, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, bookingDTO(b))
	}
	c.JSON(http.StatusOK, out)
}

// POST /api/opentrip/bookings/:id/confirm
func (a API) ConfirmBooking(c *gin.Context) {
	booking, err := a.bookings(c).ConfirmBooking(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "booking berhasil dikonfirmasi",
		"booking": bookingDTO(booking),
	})
}

type cancelBookingRequest struct {
	Reason string `json:"reason"`
}

// POST /api/opentrip/bookings/:id/cancel
func (a API) CancelBooking(c *gin.Context) {
	var req cancelBookingRequest
	if c.Request.Body != nil {
		// reason is optional; ignore bind errors on an empty body
		_ = c.ShouldBindJSON(&req)
	}
	booking, err := a.bookings(c).CancelBooking(c.Param("id"), req.Reason)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "booking berhasil dibatalkan",
		"booking": bookingDTO(booking),
	})
}
