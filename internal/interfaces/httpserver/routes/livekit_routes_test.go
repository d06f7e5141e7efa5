package routes_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"voicehub/control-api/internal/config"
	"voicehub/control-api/internal/infrastructure/livekit"
	"voicehub/control-api/internal/interfaces/httpserver/handlers"
	"voicehub/control-api/internal/interfaces/httpserver/routes"
)

func newTokenTestEngine(apiKey, apiSecret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		LiveKitAPIKey:    apiKey,
		LiveKitAPISecret: apiSecret,
		LiveKitTokenTTL:  10 * time.Minute,
	}
	issuer := livekit.NewTokenIssuer(cfg, zerolog.Nop())
	engine := gin.New()
	routes.RegisterTokenRoutes(engine, handlers.NewTokenHandler(issuer))
	return engine
}

func TestIssueTokenRoute(t *testing.T) {
	engine := newTokenTestEngine("APIkey123", "secret-0123456789-0123456789")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/livekit/token/demo/alice", nil)
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Errorf("content type = %q, want text/plain", ct)
	}
	// A signed JWT has three dot-separated segments.
	if parts := strings.Split(w.Body.String(), "."); len(parts) != 3 {
		t.Errorf("body is not a JWT: %s", w.Body.String())
	}
}

func TestIssueDefaultTokenRoute(t *testing.T) {
	engine := newTokenTestEngine("APIkey123", "secret-0123456789-0123456789")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/livekit/token", nil)
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if w.Body.Len() == 0 {
		t.Error("expected a token body")
	}
}

func TestIssueTokenRoute_MissingCredentials(t *testing.T) {
	engine := newTokenTestEngine("", "")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/livekit/token", nil)
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
}

func TestPlaygroundTokenRoute(t *testing.T) {
	engine := newTokenTestEngine("APIkey123", "secret-0123456789-0123456789")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/livekit/playground-token", nil)
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var body struct {
		Identity    string `json:"identity"`
		Room        string `json:"room"`
		AccessToken string `json:"accessToken"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Identity == "" || body.Room == "" || body.AccessToken == "" {
		t.Errorf("incomplete response: %+v", body)
	}
}
