package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"authapi/internal/auth/google"
	"authapi/internal/config"
	"authapi/internal/email/factory"
	"authapi/internal/handler"
	"authapi/internal/logging"
	"authapi/internal/port"
	"authapi/internal/repository/postgres"
	"authapi/internal/router"
	"authapi/internal/service"
)

// @title Auth API
// @version 1.0
// @description Account registration, email and Google sign-in, and per-user dashboard.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	_ = godotenv.Load()

	if err := run(); err != nil {
		logrus.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log := logging.New(cfg.Log)
	if cfg.Server.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Repositories
	userRepo := postgres.NewUserRepo(db)
	dashboardRepo := postgres.NewDashboardRepo(db)

	emailSender, err := factory.NewEmailSender(ctx, cfg.Email, log)
	if err != nil {
		return fmt.Errorf("failed to initialize email sender: %w", err)
	}

	// Services
	authSvc := service.NewAuthService(userRepo, cfg.JWT)
	registrationSvc := service.NewRegistrationService(userRepo, emailSender, cfg.JWT, log)
	dashboardSvc := service.NewDashboardService(dashboardRepo)
	userSvc := service.NewUserService(userRepo)

	var socialAuthSvc service.SocialAuthService
	if cfg.Google.Enabled() {
		verifier, err := google.NewVerifier(ctx, cfg.Google.ClientID, log)
		if err != nil {
			return fmt.Errorf("failed to initialize google verifier: %w", err)
		}
		verifiers := map[string]port.SocialTokenVerifier{verifier.Provider(): verifier}
		socialAuthSvc = service.NewSocialAuthService(verifiers, userRepo, authSvc, log)
		log.Info("google sign-in enabled")
	} else {
		log.Warn("google client id not set, google sign-in disabled")
	}

	// Handlers
	handlers := router.Handlers{
		Auth:      handler.NewAuthHandler(authSvc, registrationSvc, socialAuthSvc),
		Dashboard: handler.NewDashboardHandler(dashboardSvc),
		User:      handler.NewUserHandler(userSvc),
		Health:    handler.NewHealthHandler(db),
	}
	r := router.Setup(cfg, log, authSvc, handlers)

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithField("addr", cfg.Server.Port).Info("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}
