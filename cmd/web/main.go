package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AdamBeresnev/tournament-app/internal/config"
	"github.com/AdamBeresnev/tournament-app/internal/db"
	"github.com/AdamBeresnev/tournament-app/internal/mail"
	"github.com/AdamBeresnev/tournament-app/internal/middleware"
	"github.com/AdamBeresnev/tournament-app/internal/payment"
	"github.com/AdamBeresnev/tournament-app/internal/service"
	"github.com/AdamBeresnev/tournament-app/internal/storage"
	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"
)

const shutdownTimeout = 15 * time.Second

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("application failed", "error", err)
		os.Exit(1)
	}
	logger.Info("application exited")
}

func run(logger *slog.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	database, err := db.Open(cfg.DatabasePath)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := db.RunMigrations(database.DB); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	middleware.InitAuth(cfg)

	sessionManager := scs.New()
	sessionManager.Lifetime = cfg.SessionLifetime
	sessionManager.Store = sqlite3store.New(database.DB)

	deps := dependencies{}
	if cfg.UploadsEnabled() {
		uploader, err := storage.NewR2Uploader(context.Background(), storage.R2Config{
			AccountID:       cfg.R2AccountID,
			AccessKeyID:     cfg.R2AccessKeyID,
			SecretAccessKey: cfg.R2SecretAccessKey,
			Bucket:          cfg.R2Bucket,
			PublicBaseURL:   cfg.R2PublicBaseURL,
		})
		if err != nil {
			return err
		}
		deps.uploader = uploader
		logger.Info("R2 uploader initialized", "bucket", cfg.R2Bucket)
	}
	if cfg.PaymentsEnabled() {
		deps.checkout = payment.NewStripeProvider(cfg.StripeSecretKey, cfg.StripeWebhookSecret)
		logger.Info("payments enabled")
	}
	if cfg.MailEnabled() {
		deps.mailer = mail.NewResendMailer(cfg.ResendAPIKey, cfg.MailFrom)
		logger.Info("mail enabled", "from", cfg.MailFrom)
	}

	app := newApplication(cfg, database, sessionManager, deps)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      app.routes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("server starting", "address", cfg.BaseURL)
		serverErrors <- server.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
	case sig := <-quit:
		logger.Info("shutdown signal received", "signal", sig.String())

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			server.Close()
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		logger.Info("server shutdown complete")
	}
	return nil
}

// dependencies holds the optional integrations. Any of them may stay nil.
type dependencies struct {
	uploader storage.FileUploader
	checkout service.CheckoutProvider
	mailer   service.Mailer
}
