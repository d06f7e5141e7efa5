package handlers

import (
	"github.com/google/wire"

	"voicehub/control-api/internal/config"
	"voicehub/control-api/internal/domain/agent"
	"voicehub/control-api/internal/domain/provision"
	"voicehub/control-api/internal/domain/room"
	"voicehub/control-api/internal/domain/token"
	"voicehub/control-api/internal/webhook"
)

// Provider holds all HTTP handlers.
type Provider struct {
	Token     *TokenHandler
	Room      *RoomHandler
	Agent     *AgentHandler
	Provision *ProvisionHandler
	Webhook   *WebhookHandler
}

// NewProvider creates a new handler provider.
func NewProvider(
	cfg *config.Config,
	issuer token.Issuer,
	roomService room.Service,
	registry agent.Registry,
	provisionService provision.Service,
	dispatcher *webhook.Dispatcher,
) *Provider {
	return &Provider{
		Token:     NewTokenHandler(issuer),
		Room:      NewRoomHandler(roomService),
		Agent:     NewAgentHandler(registry),
		Provision: NewProvisionHandler(provisionService),
		Webhook:   NewWebhookHandler(cfg, dispatcher),
	}
}

// HandlerProvider provides all handlers for wire.
var HandlerProvider = wire.NewSet(
	NewProvider,
)
