package handlers

import (
	"context"

	"voicehub/control-api/internal/domain/agent"
)

// AgentHandler handles agent registry HTTP requests.
type AgentHandler struct {
	registry agent.Registry
}

// NewAgentHandler creates a new agent handler.
func NewAgentHandler(registry agent.Registry) *AgentHandler {
	return &AgentHandler{registry: registry}
}

// Attach registers an agent for a room, overwriting any existing entry.
func (h *AgentHandler) Attach(ctx context.Context, roomName, systemPrompt string) (*agent.Registration, error) {
	return h.registry.Attach(ctx, roomName, systemPrompt)
}

// Exists reports whether an agent is registered for the room.
func (h *AgentHandler) Exists(ctx context.Context, roomName string) bool {
	_, ok := h.registry.Get(ctx, roomName)
	return ok
}

// List returns the room names with registered agents.
func (h *AgentHandler) List(ctx context.Context) []string {
	return h.registry.List(ctx)
}

// Details returns the full registration map.
func (h *AgentHandler) Details(ctx context.Context) map[string]*agent.Registration {
	return h.registry.Details(ctx)
}

// Remove detaches an agent, reporting whether one was registered.
func (h *AgentHandler) Remove(ctx context.Context, roomName string) bool {
	return h.registry.Remove(ctx, roomName)
}
