package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"fresh-connect/api"
	"fresh-connect/internal"
	"fresh-connect/listing"
	"fresh-connect/moderation"
	"fresh-connect/observability"
	"fresh-connect/repositories"
	"fresh-connect/services"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run keeps every defer on the error path, os.Exit is only called from main.
func run() error {
	// A missing .env is fine, the real environment wins anyway
	_ = godotenv.Load()

	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	db, err := repositories.OpenBadger(config.BadgerFilepath, config.BadgerInMemory)
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	codec, err := repositories.NewCodec(config.StoreCodec)
	if err != nil {
		return err
	}
	store := repositories.NewBadgerStore(db)
	users := repositories.NewUserRepository(store, codec)
	groups := repositories.NewGroupRepository(store, codec)

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := observability.NewMetrics(registry)

	censoredChar, err := internal.CharacterRune(config.CharReplacement)
	if err != nil {
		return err
	}
	moderator, err := moderation.NewModerator(config.BannedWords(), censoredChar, log)
	if err != nil {
		return fmt.Errorf("moderator: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var provider listing.Provider
	if config.GeminiAPIKey != "" {
		gemini, err := listing.NewGeminiProvider(ctx, config.GeminiAPIKey, config.GeminiModel)
		if err != nil {
			return err
		}
		provider = gemini
	} else {
		log.Warn("GEMINI_API_KEY is not set, only partner ads will be listed")
	}
	listings, err := listing.NewService(provider, config.ListingTimeout, config.ListingCacheTTL, metrics, log)
	if err != nil {
		return fmt.Errorf("listing cache: %w", err)
	}
	defer listings.Close()

	matcher := services.NewGroupMatcher(groups, config.GroupCapacity, metrics, log)
	hub := services.NewHub(services.HubConfig{
		Session:          services.NewSessionService(users, matcher, log),
		Membership:       services.NewMembershipService(users, groups, matcher, log),
		Messaging:        services.NewMessagingService(groups, log),
		Listings:         listings,
		Moderator:        moderator,
		MaxContentLength: config.MaxContentLength,
		Metrics:          metrics,
		Log:              log,
	})

	server := &http.Server{
		Addr: config.Address(),
		Handler: api.NewRouter(api.RouterConfig{
			Core:           hub,
			Metrics:        metrics,
			Gatherer:       registry,
			AllowedOrigins: config.Origins(),
			Log:            log,
		}),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "address", server.Addr, "codec", codec.Name(), "at", time.Now().UTC())
		if err := server.ListenAndServe(); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
	case err := <-errChan:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Info("Program stopped cleanly")
	return nil
}
