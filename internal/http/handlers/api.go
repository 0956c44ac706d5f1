package handlers

import (
	"github.com/gin-gonic/gin"

	"opentrip/internal/config"
	"opentrip/internal/domain"
	"opentrip/internal/http/middleware"
	"opentrip/internal/services"
	"opentrip/internal/storage"
)

// API wires injected stores into per-request services. Stores are the
// only shared state; services are cheap value types built per call so
// the request_id travels with them.
type API struct {
	Env          config.Env
	Users        storage.Store[domain.User]
	Trips        storage.Store[domain.Trip]
	Bookings     storage.Store[domain.Booking]
	Transactions storage.Store[domain.Transaction]
}

func (a API) trips(c *gin.Context) services.TripService {
	return services.TripService{
		Trips:     a.Trips,
		RequestID: middleware.GetRequestID(c),
	}
}

func (a API) bookings(c *gin.Context) services.BookingService {
	return services.BookingService{
		Bookings:  a.Bookings,
		Trips:     a.Trips,
		RequestID: middleware.GetRequestID(c),
	}
}

func (a API) payments(c *gin.Context) services.PaymentService {
	return services.PaymentService{
		Transactions: a.Transactions,
		Bookings:     a.Bookings,
		Trips:        a.Trips,
		RequestID:    middleware.GetRequestID(c),
	}
}

func (a API) docs(c *gin.Context) services.DocsService {
	return services.DocsService{
		Bookings:     a.Bookings,
		Trips:        a.Trips,
		Transactions: a.Transactions,
		RequestID:    middleware.GetRequestID(c),
	}
}
