package routes

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"voicehub/control-api/internal/interfaces/httpserver/handlers"
	"voicehub/control-api/internal/interfaces/httpserver/requests"
	"voicehub/control-api/internal/interfaces/httpserver/responses"
	"voicehub/control-api/internal/utils/platformerrors"
)

// RegisterAgentRoutes registers the agent registry routes. /attach and
// /create are aliases kept for older clients.
func RegisterAgentRoutes(engine *gin.Engine, handler *handlers.AgentHandler) {
	group := engine.Group("/api/agents")
	group.POST("/attach", attachAgent(handler))
	group.POST("/create", attachAgent(handler))
	group.GET("/list", listAgents(handler))
	group.GET("/:roomName", getAgent(handler))
	group.DELETE("/:roomName", removeAgent(handler))
}

func attachAgent(handler *handlers.AgentHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req requests.AttachAgentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			responses.HandleNewError(c, platformerrors.ErrorTypeValidation, "roomName is required")
			return
		}

		if _, err := handler.Attach(c.Request.Context(), req.RoomName, req.SystemPrompt); err != nil {
			responses.HandleError(c, err, "failed to attach agent")
			return
		}

		c.JSON(http.StatusOK, responses.SuccessResponse{
			Success: true,
			Message: fmt.Sprintf("Agent attached to room %s", req.RoomName),
		})
	}
}

func listAgents(handler *handlers.AgentHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		c.JSON(http.StatusOK, responses.AgentListResponse{
			Success: true,
			Agents:  handler.List(ctx),
			Details: handler.Details(ctx),
		})
	}
}

// getAgent reports registration status. An unknown room is not an error;
// the response simply carries exists=false.
func getAgent(handler *handlers.AgentHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		roomName := c.Param("roomName")
		c.JSON(http.StatusOK, responses.AgentStatusResponse{
			Success:  true,
			Exists:   handler.Exists(c.Request.Context(), roomName),
			RoomName: roomName,
		})
	}
}

func removeAgent(handler *handlers.AgentHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		roomName := c.Param("roomName")
		c.JSON(http.StatusOK, responses.AgentRemovedResponse{
			Success:  true,
			Removed:  handler.Remove(c.Request.Context(), roomName),
			RoomName: roomName,
		})
	}
}
