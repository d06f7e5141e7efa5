package handlers

import (
	"context"
	"net/http"

	"github.com/livekit/protocol/auth"
	"github.com/livekit/protocol/livekit"
	lkwebhook "github.com/livekit/protocol/webhook"

	"voicehub/control-api/internal/config"
	"voicehub/control-api/internal/webhook"
)

// WebhookHandler verifies signed platform webhook requests and hands the
// decoded events to the dispatcher.
type WebhookHandler struct {
	keyProvider auth.KeyProvider
	dispatcher  *webhook.Dispatcher
}

// NewWebhookHandler creates a new webhook handler.
func NewWebhookHandler(cfg *config.Config, dispatcher *webhook.Dispatcher) *WebhookHandler {
	return &WebhookHandler{
		keyProvider: auth.NewSimpleKeyProvider(cfg.LiveKitAPIKey, cfg.LiveKitAPISecret),
		dispatcher:  dispatcher,
	}
}

// Receive verifies the request signature against the API key pair and
// decodes the event. An error means the payload must be rejected.
func (h *WebhookHandler) Receive(r *http.Request) (*livekit.WebhookEvent, error) {
	return lkwebhook.ReceiveWebhookEvent(r, h.keyProvider)
}

// Dispatch routes a verified event to its handler.
func (h *WebhookHandler) Dispatch(ctx context.Context, event *livekit.WebhookEvent) {
	h.dispatcher.Dispatch(ctx, event)
}
