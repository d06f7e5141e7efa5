package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"voicehub/control-api/internal/config"
	"voicehub/control-api/internal/domain/provision"
	"voicehub/control-api/internal/infrastructure/livekit"
	"voicehub/control-api/internal/infrastructure/logger"
	"voicehub/control-api/internal/infrastructure/observability"
	"voicehub/control-api/internal/infrastructure/store"
	"voicehub/control-api/internal/interfaces/httpserver"
	"voicehub/control-api/internal/interfaces/httpserver/handlers"
	"voicehub/control-api/internal/webhook"
)

// Application holds the main application components.
type Application struct {
	httpServer *httpserver.HTTPServer
	reconciler *store.Reconciler
	log        zerolog.Logger
}

// NewApplication creates a new application instance.
func NewApplication(httpServer *httpserver.HTTPServer, reconciler *store.Reconciler, log zerolog.Logger) *Application {
	return &Application{
		httpServer: httpServer,
		reconciler: reconciler,
		log:        log,
	}
}

// Start runs the application.
func (a *Application) Start(ctx context.Context) error {
	a.reconciler.Start(ctx)

	// Run HTTP server (blocks until context cancelled)
	err := a.httpServer.Run(ctx)

	a.reconciler.Stop()

	return err
}

func main() {
	loadEnvFiles()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}

	log := logger.FromConfig(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Setup observability
	shutdownTelemetry, err := observability.Setup(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize observability")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := shutdownTelemetry(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("failed to shutdown telemetry")
		}
	}()

	// Platform adapters
	issuer := livekit.NewTokenIssuer(cfg, log)
	roomClient := livekit.NewRoomClient(cfg, log)

	// Agent registry and the reconciler that reports orphaned entries
	registry := store.NewMemoryRegistry(log)
	reconciler := store.NewReconciler(registry, roomClient, cfg.ReconcileInterval, log)

	provisionService := provision.NewService(roomClient, registry, issuer, log)

	// Webhook events are logged and counted; no per-kind side effects yet.
	dispatcher := webhook.NewDispatcher(webhook.Handlers{}, log)

	handlerProvider := handlers.NewProvider(cfg, issuer, roomClient, registry, provisionService, dispatcher)
	httpServer := httpserver.New(cfg, log, handlerProvider)

	app := NewApplication(httpServer, reconciler, log)

	// Credentials are reported by presence only, never by value.
	log.Info().
		Str("service", cfg.ServiceName).
		Int("port", cfg.HTTPPort).
		Str("environment", cfg.Environment).
		Str("livekit_url", cfg.LiveKitURL).
		Bool("livekit_key_configured", cfg.LiveKitAPIKey != "").
		Msg("starting application")

	if err := app.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("application stopped with error")
	}

	log.Info().Msg("application exited cleanly")
}

func loadEnvFiles() {
	paths := []string{".env", "../.env", "../../.env"}
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Overload(path); err != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to load %s: %v\n", path, err)
			}
		}
	}
}
