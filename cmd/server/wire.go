//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"
	"github.com/rs/zerolog"

	"voicehub/control-api/internal/config"
	"voicehub/control-api/internal/domain/agent"
	"voicehub/control-api/internal/domain/provision"
	"voicehub/control-api/internal/domain/room"
	"voicehub/control-api/internal/domain/token"
	"voicehub/control-api/internal/infrastructure/livekit"
	"voicehub/control-api/internal/infrastructure/store"
	"voicehub/control-api/internal/interfaces/httpserver"
	"voicehub/control-api/internal/interfaces/httpserver/handlers"
	"voicehub/control-api/internal/webhook"
)

// ProviderSet is the wire provider set for the application.
var ProviderSet = wire.NewSet(
	// Infrastructure providers
	ProvideTokenIssuer,
	ProvideRoomService,
	ProvideRegistry,
	ProvideReconciler,
	ProvideDispatcher,

	// Domain providers
	provision.NewService,

	// Interface providers
	handlers.HandlerProvider,
	httpserver.New,

	// Application
	NewApplication,
)

// InitializeApplication assembles the application graph.
func InitializeApplication(cfg *config.Config, log zerolog.Logger) *Application {
	wire.Build(ProviderSet)
	return nil
}

// ProvideTokenIssuer provides the access token issuer.
func ProvideTokenIssuer(cfg *config.Config, log zerolog.Logger) token.Issuer {
	return livekit.NewTokenIssuer(cfg, log)
}

// ProvideRoomService provides the room management facade.
func ProvideRoomService(cfg *config.Config, log zerolog.Logger) room.Service {
	return livekit.NewRoomClient(cfg, log)
}

// ProvideRegistry provides the in-memory agent registry.
func ProvideRegistry(log zerolog.Logger) agent.Registry {
	return store.NewMemoryRegistry(log)
}

// ProvideReconciler provides the registry reconciler.
func ProvideReconciler(registry agent.Registry, rooms room.Service, cfg *config.Config, log zerolog.Logger) *store.Reconciler {
	return store.NewReconciler(registry, rooms, cfg.ReconcileInterval, log)
}

// ProvideDispatcher provides the webhook dispatcher.
func ProvideDispatcher(log zerolog.Logger) *webhook.Dispatcher {
	return webhook.NewDispatcher(webhook.Handlers{}, log)
}
