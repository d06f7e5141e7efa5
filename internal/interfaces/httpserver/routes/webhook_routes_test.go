package routes_test

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/livekit/protocol/auth"
	"github.com/livekit/protocol/livekit"
	lkwebhook "github.com/livekit/protocol/webhook"
	"github.com/rs/zerolog"
	"google.golang.org/protobuf/encoding/protojson"

	"voicehub/control-api/internal/config"
	"voicehub/control-api/internal/interfaces/httpserver/handlers"
	"voicehub/control-api/internal/interfaces/httpserver/routes"
	"voicehub/control-api/internal/webhook"
)

const (
	webhookAPIKey    = "APIwebhook123456"
	webhookAPISecret = "webhook-secret-used-only-in-tests-01234"
)

func newWebhookTestEngine(handlersByKind webhook.Handlers) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		LiveKitAPIKey:    webhookAPIKey,
		LiveKitAPISecret: webhookAPISecret,
	}
	dispatcher := webhook.NewDispatcher(handlersByKind, zerolog.Nop())
	engine := gin.New()
	routes.RegisterWebhookRoutes(engine, handlers.NewWebhookHandler(cfg, dispatcher))
	return engine
}

// signWebhookPayload produces the body and Authorization header the platform
// sends: the event serialized with protojson, and a token whose sha256 claim
// covers the body.
func signWebhookPayload(t *testing.T, event *livekit.WebhookEvent) ([]byte, string) {
	t.Helper()

	body, err := protojson.Marshal(event)
	if err != nil {
		t.Fatalf("marshal event: %v", err)
	}

	sum := sha256.Sum256(body)
	token, err := auth.NewAccessToken(webhookAPIKey, webhookAPISecret).
		SetSha256(base64.StdEncoding.EncodeToString(sum[:])).
		ToJWT()
	if err != nil {
		t.Fatalf("sign auth header: %v", err)
	}
	return body, token
}

func TestWebhook_MissingAuthHeader(t *testing.T) {
	engine := newWebhookTestEngine(webhook.Handlers{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/webhooks/livekit",
		bytes.NewReader([]byte(`{"event":"room_started"}`)))
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	if got := w.Body.String(); got != `{"error":"Unauthorized"}` {
		t.Errorf("body = %s", got)
	}
}

func TestWebhook_TamperedBody(t *testing.T) {
	engine := newWebhookTestEngine(webhook.Handlers{})

	_, authHeader := signWebhookPayload(t, &livekit.WebhookEvent{
		Event: lkwebhook.EventRoomStarted,
		Room:  &livekit.Room{Name: "demo"},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/webhooks/livekit",
		bytes.NewReader([]byte(`{"event":"room_started","room":{"name":"evil"}}`)))
	req.Header.Set("Authorization", authHeader)
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if got := w.Body.String(); got != `{"error":"Invalid webhook payload"}` {
		t.Errorf("body = %s", got)
	}
}

func TestWebhook_ValidPayloadDispatches(t *testing.T) {
	var gotRoom string
	engine := newWebhookTestEngine(webhook.Handlers{
		RoomFinished: func(ctx context.Context, event *livekit.WebhookEvent) {
			gotRoom = event.Room.Name
		},
	})

	body, authHeader := signWebhookPayload(t, &livekit.WebhookEvent{
		Event: lkwebhook.EventRoomFinished,
		Id:    "evt_1",
		Room:  &livekit.Room{Name: "demo"},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/webhooks/livekit", bytes.NewReader(body))
	req.Header.Set("Authorization", authHeader)
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", w.Code, w.Body.String())
	}
	if got := w.Body.String(); got != `{"success":true}` {
		t.Errorf("body = %s", got)
	}
	if gotRoom != "demo" {
		t.Errorf("handler saw room %q, want demo", gotRoom)
	}
}
