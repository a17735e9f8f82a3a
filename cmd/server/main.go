package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"accounts/backend/internal/config"
	"accounts/backend/internal/httpserver"
	"accounts/backend/internal/infrastructure/crypto"
	"accounts/backend/internal/infrastructure/facebookapi"
	"accounts/backend/internal/infrastructure/googleapi"
	"accounts/backend/internal/infrastructure/httpclient"
	"accounts/backend/internal/infrastructure/logger"
	"accounts/backend/internal/infrastructure/metrics"
	"accounts/backend/internal/infrastructure/password"
	"accounts/backend/internal/infrastructure/postgres"
	"accounts/backend/internal/infrastructure/token"
	usecase "accounts/backend/internal/usecase/auth"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		log.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)
	appLogger := logger.New(log, collector)

	rootCtx := context.Background()
	db, err := postgres.New(rootCtx, cfg.DatabaseURL)
	if err != nil {
		log.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer db.Close()
	if err := db.Migrate(rootCtx); err != nil {
		log.Error("failed to run database migrations", slog.Any("error", err))
		os.Exit(1)
	}

	idGenerator := crypto.NewUuidProvider(appLogger)
	passwordProvider := password.NewBcryptProvider(cfg.BcryptCost, appLogger)
	jwtProvider := token.NewJwtProvider(cfg.JWTSecret, cfg.JWTExpiry, cfg.JWTIssuer, appLogger)
	tokenGenerator := token.NewRandomTokenGenerator(appLogger)

	httpClient := httpclient.New(cfg.HTTPClientTimeout, appLogger)
	facebookApi := facebookapi.NewProvider(httpClient, cfg.FacebookGraphURL, facebookapi.Credentials{
		ClientID:     cfg.FacebookClientID,
		ClientSecret: cfg.FacebookClientSecret,
	}, appLogger)
	googleApi := googleapi.NewProvider(httpClient, cfg.GoogleUserInfoURL, appLogger)

	users := postgres.NewUserRepository(db.Pool, idGenerator, appLogger)
	tokens := postgres.NewTokenForgotPasswordRepository(db.Pool, idGenerator, appLogger)

	credentialsSignIn := usecase.NewCredentialsSignIn(appLogger, users, passwordProvider)
	facebookSignIn := usecase.NewFacebookSignIn(appLogger, facebookApi, users)
	googleSignIn := usecase.NewGoogleSignIn(appLogger, googleApi, users)
	signIn := usecase.NewSignIn(appLogger, jwtProvider, facebookSignIn, googleSignIn, credentialsSignIn)
	signUp := usecase.NewSignUp(appLogger, passwordProvider, users)
	forgotPassword := usecase.NewSendForgotPasswordNotification(appLogger, users, tokenGenerator, tokens)

	server := httpserver.NewServer(
		httpserver.Options{
			Port:           cfg.HTTPPort,
			AllowedOrigins: cfg.AllowedOrigins,
			ReadTimeout:    time.Duration(cfg.ReadTimeoutSec) * time.Second,
			WriteTimeout:   time.Duration(cfg.WriteTimeoutSec) * time.Second,
			IdleTimeout:    time.Duration(cfg.IdleTimeoutSec) * time.Second,
		},
		log,
		appLogger,
		collector,
		signUp,
		signIn,
		forgotPassword,
		jwtProvider,
		metrics.Handler(registry),
	)

	go func() {
		if err := server.Start(); err != nil {
			if errors.Is(err, http.ErrServerClosed) {
				log.Info("http server closed")
				return
			}
			log.Error("server error", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", slog.Any("error", err))
	} else {
		log.Info("graceful shutdown completed")
	}
}
