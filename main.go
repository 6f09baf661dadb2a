package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"travelapp/internal/config"
	api "travelapp/internal/http"
	"travelapp/internal/repositories"
	"travelapp/internal/routegen"
	"travelapp/internal/services"

	"github.com/gin-gonic/gin"
)

func main() {
	env := config.LoadEnv()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	var store repositories.Store
	switch env.StorageDriver {
	case "mysql":
		db := config.ConnectDB(env.MySQLDSN)
		defer config.CloseDB()

		sqlStore, err := repositories.NewSQLStore(db)
		if err != nil {
			log.Fatalf("failed to init kv store: %v", err)
		}
		store = sqlStore
	case "memory":
		store = repositories.NewMemoryStore()
	default:
		log.Fatalf("unknown STORAGE_DRIVER %q (want memory or mysql)", env.StorageDriver)
	}

	sessions, err := services.NewSessionService(store, env.AuthLatency)
	if err != nil {
		log.Fatalf("failed to init session service: %v", err)
	}

	scheduler := services.NewConfirmScheduler(env.ConfirmDelay)
	defer scheduler.Stop()

	bookings := services.NewBookingService(store, sessions, scheduler)
	gen := routegen.New()

	router := api.NewRouter(env, sessions, bookings, gen)

	srv := &http.Server{
		Addr:         env.AppAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("server listening on %s (storage=%s)", env.AppAddr, env.StorageDriver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("forced shutdown: %v", err)
	}
	log.Println("server stopped")
}
