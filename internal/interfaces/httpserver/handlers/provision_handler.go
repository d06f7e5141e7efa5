package handlers

import (
	"context"

	"voicehub/control-api/internal/domain/provision"
)

// ProvisionHandler handles the composite room-initialization request.
type ProvisionHandler struct {
	service provision.Service
}

// NewProvisionHandler creates a new provision handler.
func NewProvisionHandler(service provision.Service) *ProvisionHandler {
	return &ProvisionHandler{service: service}
}

// InitializeRoom creates the room, attaches an agent and issues a token.
func (h *ProvisionHandler) InitializeRoom(ctx context.Context, req *provision.Request) (*provision.Result, error) {
	return h.service.InitializeRoom(ctx, req)
}
