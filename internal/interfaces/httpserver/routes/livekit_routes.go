package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"voicehub/control-api/internal/interfaces/httpserver/handlers"
	"voicehub/control-api/internal/interfaces/httpserver/responses"
)

// RegisterTokenRoutes registers the token issuing routes.
func RegisterTokenRoutes(engine *gin.Engine, handler *handlers.TokenHandler) {
	group := engine.Group("/livekit")
	group.GET("/token", issueDefaultToken(handler))
	group.GET("/token/:room/:identity", issueToken(handler))
	group.GET("/playground-token", issuePlaygroundToken(handler))
}

// issueDefaultToken returns a join token with generated room and identity,
// as plain text.
func issueDefaultToken(handler *handlers.TokenHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		jwt, err := handler.IssueJoinToken("", "")
		if err != nil {
			responses.HandleError(c, err, "failed to issue token")
			return
		}
		c.String(http.StatusOK, jwt)
	}
}

// issueToken returns a join token for the path's room and identity, as
// plain text.
func issueToken(handler *handlers.TokenHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		room := c.Param("room")
		identity := c.Param("identity")

		jwt, err := handler.IssueJoinToken(room, identity)
		if err != nil {
			responses.HandleError(c, err, "failed to issue token")
			return
		}
		c.String(http.StatusOK, jwt)
	}
}

// issuePlaygroundToken returns a full-capability token for a fresh room.
func issuePlaygroundToken(handler *handlers.TokenHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		pt, err := handler.IssuePlaygroundToken()
		if err != nil {
			responses.HandleError(c, err, "failed to issue playground token")
			return
		}
		c.JSON(http.StatusOK, pt)
	}
}
