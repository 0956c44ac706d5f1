package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	intconfig "opentrip/internal/config"
	"opentrip/internal/domain"
	router "opentrip/internal/http"
	"opentrip/internal/storage"
)

func main() {
	env := intconfig.LoadEnv()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	var stores router.Stores
	if env.StorageDriver == "mysql" {
		db := intconfig.ConnectDB(env)
		defer intconfig.CloseDB()
		stores = router.Stores{
			Users:        storage.NewMySQL[domain.User](db, "user", "users"),
			Trips:        storage.NewMySQL[domain.Trip](db, "trip", "trips"),
			Bookings:     storage.NewMySQL[domain.Booking](db, "booking", "bookings"),
			Transactions: storage.NewMySQL[domain.Transaction](db, "transaction", "transactions"),
		}
	} else {
		stores = router.Stores{
			Users:        storage.NewMemory[domain.User]("user"),
			Trips:        storage.NewMemory[domain.Trip]("trip"),
			Bookings:     storage.NewMemory[domain.Booking]("booking"),
			Transactions: storage.NewMemory[domain.Transaction]("transaction"),
		}
	}

	r := router.NewRouter(env, stores)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("Server berjalan di http://localhost%s (storage=%s)", env.AppAddr, env.StorageDriver)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Gagal menjalankan server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("Mematikan server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Shutdown server gagal: %v", err)
	}

	log.Println("Server berhenti dengan aman.")
}
