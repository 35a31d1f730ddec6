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

	"retreat/internal/adapters/discord"
	"retreat/internal/adapters/httpapi"
	"retreat/internal/application"
	"retreat/internal/config"
	"retreat/internal/infrastructure/database"
	"retreat/internal/infrastructure/i18n"
	"retreat/internal/infrastructure/sqlite"
	"retreat/internal/infrastructure/telemetry"
	"retreat/internal/ports/output"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.Setup(ctx, "retreat", cfg.OTelEndpoint, cfg.OTelEnabled)
	if err != nil {
		log.Printf("⚠️ Tracing disabled: %v", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			log.Printf("⚠️ Tracing shutdown: %v", err)
		}
	}()

	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatalf("❌ Storage initialisation failed: %v", err)
	}
	defer closeStore()

	tr := i18n.NewTranslator(cfg.DefaultLocale)

	var notifier output.AssignmentNotifier = output.NopNotifier{}
	if cfg.DiscordEnabled() {
		n, err := discord.NewNotifier(cfg.DiscordToken, cfg.DiscordChannel, tr, cfg.DefaultLocale)
		if err != nil {
			log.Printf("⚠️ Discord notifier disabled: %v", err)
		} else {
			notifier = n
			defer n.Wait()
		}
	}

	h := httpapi.NewHandler(httpapi.Services{
		Events:       application.NewEventService(store),
		Rooms:        application.NewRoomService(store),
		Participants: application.NewParticipantService(store),
		Assignments:  application.NewAssignmentService(store, notifier),
	}, tr)

	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      h.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("✅ Server listening on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("❌ Server error: %v", err)
			stop()
		}
	}()

	<-ctx.Done()

	log.Println("Shutting down server…")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("❌ Graceful shutdown failed: %v", err)
		os.Exit(1)
	}
	log.Println("Server stopped")
}

// openStore connects the configured storage driver and applies migrations.
func openStore(ctx context.Context, cfg *config.Config) (output.Store, func(), error) {
	switch cfg.StorageDriver {
	case config.DriverSQLite:
		store, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return store, func() { _ = store.Close() }, nil
	default:
		if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
			return nil, nil, err
		}
		pool, err := database.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		return database.NewStore(pool), pool.Close, nil
	}
}
