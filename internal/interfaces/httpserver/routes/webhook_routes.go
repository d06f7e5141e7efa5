package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"voicehub/control-api/internal/infrastructure/metrics"
	"voicehub/control-api/internal/interfaces/httpserver/handlers"
)

// RegisterWebhookRoutes registers the platform webhook receiver.
func RegisterWebhookRoutes(engine *gin.Engine, handler *handlers.WebhookHandler) {
	engine.POST("/webhooks/livekit", receiveWebhook(handler))
}

// receiveWebhook rejects unauthenticated requests before touching the body,
// verifies the signed payload, and acknowledges every verified event with
// 200 regardless of handler outcome so the platform does not retry.
func receiveWebhook(handler *handlers.WebhookHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			metrics.WebhookRejected.WithLabelValues("missing_auth").Inc()
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		event, err := handler.Receive(c.Request)
		if err != nil {
			// Verification details stay out of the response.
			metrics.WebhookRejected.WithLabelValues("invalid_payload").Inc()
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid webhook payload"})
			return
		}

		handler.Dispatch(c.Request.Context(), event)
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
