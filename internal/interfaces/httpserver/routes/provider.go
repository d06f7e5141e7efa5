// Package routes wires the HTTP handlers onto their paths. The gin handler
// funcs live here; the handlers package stays transport-agnostic.
package routes

import (
	"github.com/gin-gonic/gin"

	"voicehub/control-api/internal/interfaces/httpserver/handlers"
)

// Provider holds all route registrations.
type Provider struct {
	handlers *handlers.Provider
}

// NewProvider creates a new route provider.
func NewProvider(handlerProvider *handlers.Provider) *Provider {
	return &Provider{handlers: handlerProvider}
}

// Register registers all routes on the engine.
func (p *Provider) Register(engine *gin.Engine) {
	RegisterTokenRoutes(engine, p.handlers.Token)
	RegisterRoomRoutes(engine, p.handlers.Room)
	RegisterAgentRoutes(engine, p.handlers.Agent)
	RegisterProvisionRoutes(engine, p.handlers.Provision)
	RegisterWebhookRoutes(engine, p.handlers.Webhook)
}
