package api

import (
	"log"
	stdhttp "net/http"

	"github.com/gin-gonic/gin"

	intconfig "opentrip/internal/config"
	"opentrip/internal/domain"
	h "opentrip/internal/http/handlers"
	"opentrip/internal/http/middleware"
	"opentrip/internal/storage"
)

// Stores groups the injected keyed stores, one per aggregate type.
type Stores struct {
	Users        storage.Store[domain.User]
	Trips        storage.Store[domain.Trip]
	Bookings     storage.Store[domain.Booking]
	Transactions storage.Store[domain.Transaction]
}

func NewRouter(env intconfig.Env, stores Stores) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS())

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route tidak ditemukan",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	a := h.API{
		Env:          env,
		Users:        stores.Users,
		Trips:        stores.Trips,
		Bookings:     stores.Bookings,
		Transactions: stores.Transactions,
	}
	authRequired := middleware.RequireAuth([]byte(env.JWTSecret))

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/routes", h.Routes)

		// Auth
		auth := api.Group("/auth")
		auth.POST("/register", a.Register)
		auth.POST("/login", a.Login)
		auth.GET("/me", authRequired, a.Me)

		opentrip := api.Group("/opentrip")
		{
			// Trips: reads are public, mutations require auth
			trips := opentrip.Group("/trips")
			trips.GET("", a.ListTrips)
			trips.GET("/:id", a.GetTrip)
			trips.POST("", authRequired, a.CreateTrip)
			trips.POST("/:id/schedule", authRequired, a.SetTripSchedule)
			trips.POST("/:id/guide", authRequired, a.AssignTripGuide)
			trips.PUT("/:id/capacity", authRequired, a.UpdateTripCapacity)
			trips.PUT("/:id/itinerary", authRequired, a.UpdateTripItinerary)

			// Bookings
			bookings := opentrip.Group("/bookings")
			bookings.GET("", a.ListBookings)
			bookings.GET("/:id", a.GetBooking)
			bookings.POST("", a.CreateBooking)
			bookings.POST("/:id/confirm", a.ConfirmBooking)
			bookings.POST("/:id/cancel", a.CancelBooking)
			bookings.GET("/:id/e-ticket", a.GetBookingETicketPDF)
			bookings.GET("/:id/invoice", a.GetBookingInvoicePDF)

			// Transactions
			transactions := opentrip.Group("/transactions")
			transactions.GET("", a.ListTransactions)
			transactions.GET("/:id", a.GetTransaction)
			transactions.POST("", authRequired, a.CreateTransaction)
			transactions.POST("/:id/validate", a.ValidateTransaction)
			transactions.POST("/:id/confirm", a.ConfirmTransaction)
			transactions.POST("/:id/refund", a.RefundTransaction)
		}
	}

	h.SetRouter(r)
	return r
}
