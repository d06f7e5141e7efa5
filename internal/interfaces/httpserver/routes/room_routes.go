package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"voicehub/control-api/internal/domain/room"
	"voicehub/control-api/internal/interfaces/httpserver/handlers"
	"voicehub/control-api/internal/interfaces/httpserver/requests"
	"voicehub/control-api/internal/interfaces/httpserver/responses"
	"voicehub/control-api/internal/utils/platformerrors"
)

// RegisterRoomRoutes registers the room and participant management routes.
func RegisterRoomRoutes(engine *gin.Engine, handler *handlers.RoomHandler) {
	rooms := engine.Group("/api/rooms")
	rooms.GET("", listRooms(handler))
	rooms.POST("", createRoom(handler))
	rooms.DELETE("/:roomName", deleteRoom(handler))
	rooms.GET("/:roomName/participants", listParticipants(handler))

	participant := rooms.Group("/:roomName/participants/:identity")
	participant.GET("", getParticipant(handler))
	participant.DELETE("", removeParticipant(handler))
	participant.PATCH("/permissions", updatePermissions(handler))
	participant.PATCH("/metadata", updateMetadata(handler))
	participant.PATCH("/tracks/:trackSid", muteTrack(handler))
}

func listRooms(handler *handlers.RoomHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		rooms, err := handler.ListRooms(c.Request.Context())
		if err != nil {
			responses.HandleError(c, err, "failed to list rooms")
			return
		}
		c.JSON(http.StatusOK, responses.ListRoomsResponse{Rooms: rooms})
	}
}

func createRoom(handler *handlers.RoomHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req requests.CreateRoomRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			responses.HandleNewError(c, platformerrors.ErrorTypeValidation, "name is required")
			return
		}

		created, err := handler.CreateRoom(c.Request.Context(), req.Name, room.CreateOptions{
			EmptyTimeout:    time.Duration(req.EmptyTimeout) * time.Second,
			MaxParticipants: req.MaxParticipants,
		})
		if err != nil {
			responses.HandleError(c, err, "failed to create room")
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

func deleteRoom(handler *handlers.RoomHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		roomName := c.Param("roomName")

		if err := handler.DeleteRoom(c.Request.Context(), roomName); err != nil {
			responses.HandleError(c, err, "failed to delete room")
			return
		}
		c.JSON(http.StatusOK, responses.SuccessResponse{Success: true})
	}
}

func listParticipants(handler *handlers.RoomHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		roomName := c.Param("roomName")

		participants, err := handler.ListParticipants(c.Request.Context(), roomName)
		if err != nil {
			responses.HandleError(c, err, "failed to list participants")
			return
		}
		c.JSON(http.StatusOK, responses.ListParticipantsResponse{Participants: participants})
	}
}

func getParticipant(handler *handlers.RoomHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		roomName := c.Param("roomName")
		identity := c.Param("identity")

		participant, err := handler.GetParticipant(c.Request.Context(), roomName, identity)
		if err != nil {
			responses.HandleError(c, err, "failed to get participant")
			return
		}
		c.JSON(http.StatusOK, participant)
	}
}

func updatePermissions(handler *handlers.RoomHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		roomName := c.Param("roomName")
		identity := c.Param("identity")

		var req requests.UpdatePermissionsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			responses.HandleNewError(c, platformerrors.ErrorTypeValidation, "invalid permissions body")
			return
		}

		err := handler.UpdateParticipantPermissions(c.Request.Context(), roomName, identity, room.Permissions{
			CanPublish:     req.CanPublish,
			CanSubscribe:   req.CanSubscribe,
			CanPublishData: req.CanPublishData,
		})
		if err != nil {
			responses.HandleError(c, err, "failed to update permissions")
			return
		}
		c.JSON(http.StatusOK, responses.SuccessResponse{Success: true})
	}
}

func updateMetadata(handler *handlers.RoomHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		roomName := c.Param("roomName")
		identity := c.Param("identity")

		var req requests.UpdateMetadataRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			responses.HandleNewError(c, platformerrors.ErrorTypeValidation, "metadata is required")
			return
		}

		if err := handler.UpdateParticipantMetadata(c.Request.Context(), roomName, identity, req.Metadata); err != nil {
			responses.HandleError(c, err, "failed to update metadata")
			return
		}
		c.JSON(http.StatusOK, responses.SuccessResponse{Success: true})
	}
}

func removeParticipant(handler *handlers.RoomHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		roomName := c.Param("roomName")
		identity := c.Param("identity")

		if err := handler.RemoveParticipant(c.Request.Context(), roomName, identity); err != nil {
			responses.HandleError(c, err, "failed to remove participant")
			return
		}
		c.JSON(http.StatusOK, responses.SuccessResponse{Success: true})
	}
}

func muteTrack(handler *handlers.RoomHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		roomName := c.Param("roomName")
		identity := c.Param("identity")
		trackSID := c.Param("trackSid")

		var req requests.MuteTrackRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Muted == nil {
			responses.HandleNewError(c, platformerrors.ErrorTypeValidation, "muted is required")
			return
		}

		track, err := handler.MuteParticipantTrack(c.Request.Context(), roomName, identity, trackSID, *req.Muted)
		if err != nil {
			responses.HandleError(c, err, "failed to update track mute state")
			return
		}
		c.JSON(http.StatusOK, responses.MuteTrackResponse{Success: true, Track: track})
	}
}
