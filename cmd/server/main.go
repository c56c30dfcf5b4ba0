// Command server is the conference backend entry point.
// It wires together all layers and starts the HTTP server.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/bop5188-web/conference-hub/internal/config"
	"github.com/bop5188-web/conference-hub/internal/database"
	"github.com/bop5188-web/conference-hub/internal/handler"
	"github.com/bop5188-web/conference-hub/internal/repository"
	"github.com/bop5188-web/conference-hub/internal/service"
)

func main() {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger()

	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config")
	}

	// A store connection failure at startup is fatal.
	pool, err := database.NewPool(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("database")
	}
	defer pool.Close()
	log.Info().Msg("connected to PostgreSQL")

	if err := database.InitSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("schema")
	}
	if cfg.SeedSampleData {
		if err := database.SeedSampleData(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("seed")
		}
	}

	attendeeRepo := repository.NewAttendeeRepository(pool)
	sessionRepo := repository.NewSessionRepository(pool)
	regRepo := repository.NewRegistrationRepository(pool)

	regSvc := service.NewRegistrationService(regRepo)
	attendeeSvc := service.NewAttendeeService(attendeeRepo)
	sessionSvc := service.NewSessionService(sessionRepo, regRepo)

	router := handler.NewRouter(
		handler.NewAttendeeHandler(attendeeSvc, regSvc),
		handler.NewSessionHandler(sessionSvc, regSvc),
		handler.NewRegistrationHandler(regSvc),
	)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Run in background goroutine so we can listen for shutdown signal.
	go func() {
		log.Info().Str("port", cfg.Port).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Block until SIGINT or SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}
