// Package responses contains HTTP response DTOs and error helpers for the
// control API.
package responses

import (
	"voicehub/control-api/internal/domain/agent"
	"voicehub/control-api/internal/domain/provision"
	"voicehub/control-api/internal/domain/room"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error *ErrorDetail `json:"error"`
}

// ErrorDetail contains error details.
type ErrorDetail struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

// SuccessResponse is the minimal acknowledgement body.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// ListRoomsResponse wraps the room list.
type ListRoomsResponse struct {
	Rooms []*room.Room `json:"rooms"`
}

// ListParticipantsResponse wraps the participant list.
type ListParticipantsResponse struct {
	Participants []*room.Participant `json:"participants"`
}

// MuteTrackResponse returns the track's state after a mute update.
type MuteTrackResponse struct {
	Success bool        `json:"success"`
	Track   *room.Track `json:"track"`
}

// AgentListResponse mirrors the agent list shape.
type AgentListResponse struct {
	Success bool                           `json:"success"`
	Agents  []string                       `json:"agents"`
	Details map[string]*agent.Registration `json:"details"`
}

// AgentStatusResponse reports whether an agent is attached to a room.
// A missing agent is not an error; Exists is simply false.
type AgentStatusResponse struct {
	Success  bool   `json:"success"`
	Exists   bool   `json:"exists"`
	RoomName string `json:"roomName"`
}

// AgentRemovedResponse reports the outcome of a detach.
type AgentRemovedResponse struct {
	Success  bool   `json:"success"`
	Removed  bool   `json:"removed"`
	RoomName string `json:"roomName"`
}

// InitializedRoom is the nested room block of the initialize response.
type InitializedRoom struct {
	Name string `json:"name"`
	SID  string `json:"sid"`
}

// InitializeRoomResponse is the composite provisioning result.
type InitializeRoomResponse struct {
	Success  bool            `json:"success"`
	Room     InitializedRoom `json:"room"`
	Identity string          `json:"identity"`
	Token    string          `json:"token"`
	Message  string          `json:"message"`
}

// NewInitializeRoomResponse builds the response from a provisioning result.
func NewInitializeRoomResponse(result *provision.Result) InitializeRoomResponse {
	return InitializeRoomResponse{
		Success: true,
		Room: InitializedRoom{
			Name: result.Room.Name,
			SID:  result.Room.SID,
		},
		Identity: result.Identity,
		Token:    result.Token,
		Message:  "Room initialized with agent",
	}
}
