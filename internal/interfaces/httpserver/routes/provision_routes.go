package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"voicehub/control-api/internal/domain/provision"
	"voicehub/control-api/internal/interfaces/httpserver/handlers"
	"voicehub/control-api/internal/interfaces/httpserver/requests"
	"voicehub/control-api/internal/interfaces/httpserver/responses"
	"voicehub/control-api/internal/utils/platformerrors"
)

// RegisterProvisionRoutes registers the composite initialize-room route.
func RegisterProvisionRoutes(engine *gin.Engine, handler *handlers.ProvisionHandler) {
	engine.POST("/api/initialize-room", initializeRoom(handler))
}

func initializeRoom(handler *handlers.ProvisionHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req requests.InitializeRoomRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			responses.HandleNewError(c, platformerrors.ErrorTypeValidation, "systemPrompt is required")
			return
		}

		result, err := handler.InitializeRoom(c.Request.Context(), &provision.Request{
			RoomName:     req.RoomName,
			Identity:     req.Identity,
			SystemPrompt: req.SystemPrompt,
		})
		if err != nil {
			responses.HandleError(c, err, "failed to initialize room")
			return
		}

		c.JSON(http.StatusOK, responses.NewInitializeRoomResponse(result))
	}
}
