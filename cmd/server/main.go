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

	"go.uber.org/zap"

	"github.com/nexuscrm/formbridge/internal/application/services"
	"github.com/nexuscrm/formbridge/internal/config"
	"github.com/nexuscrm/formbridge/internal/infrastructure/airtable"
	"github.com/nexuscrm/formbridge/internal/interfaces/rest"
	"github.com/nexuscrm/formbridge/pkg/constants"
	"github.com/nexuscrm/formbridge/pkg/fieldtypes"
	"github.com/nexuscrm/formbridge/pkg/formbuilder"
	"github.com/nexuscrm/formbridge/pkg/logger"
	"github.com/nexuscrm/formbridge/pkg/policy"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	logg, err := logger.New(logger.Options{Level: cfg.LogLevel, File: cfg.LogFile})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = logg.Sync() }()

	policies := policy.Default()
	if cfg.PolicyFile != "" {
		policies, err = policy.LoadFile(cfg.PolicyFile)
		if err != nil {
			logg.Fatal("Failed to load form policy", zap.String("file", cfg.PolicyFile), zap.Error(err))
		}
	}
	logg.Info("Form policy loaded", zap.Int("rules", len(policies.Rules())))

	client, err := airtable.NewClient(cfg.Airtable)
	if err != nil {
		logg.Fatal("Failed to create backend client", zap.Error(err))
	}
	if !cfg.Airtable.VerifyTLS {
		logg.Warn("TLS certificate verification is disabled for the backend client")
	}

	builder := formbuilder.New(fieldtypes.NewMapper(policies))
	formService := services.NewFormService(client, builder, services.Credentials{
		TokenSet:  cfg.Airtable.Token != "",
		BaseIDSet: cfg.Airtable.BaseID != "",
	}, logg)

	router := rest.NewRouter(rest.NewFormHandler(formService, logg), logg)

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Fatal("Failed to start server", zap.Error(err))
		}
	}()
	logg.Info("Form dashboard started",
		zap.String("addr", cfg.Addr()),
		zap.String("backend", client.BaseURL),
		zap.Duration("backend_timeout", cfg.Airtable.Timeout),
	)

	// Wait for SIGINT/SIGTERM, then give in-flight requests time to finish
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logg.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), constants.DefaultShutdownSeconds*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logg.Error("Server forced to shutdown", zap.Error(err))
	}

	logg.Info("Server exiting")
}
