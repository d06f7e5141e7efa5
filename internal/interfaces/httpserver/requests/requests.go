// Package requests contains HTTP request DTOs for the control API.
package requests

// CreateRoomRequest is the body for POST /api/rooms. Name is required;
// timeout and capacity fall back to the configured defaults when omitted.
type CreateRoomRequest struct {
	Name            string `json:"name" binding:"required"`
	EmptyTimeout    int    `json:"emptyTimeout,omitempty"`
	MaxParticipants int    `json:"maxParticipants,omitempty"`
}

// UpdatePermissionsRequest is the body for the participant permissions
// patch. Omitted fields keep their current value.
type UpdatePermissionsRequest struct {
	CanPublish     *bool `json:"canPublish,omitempty"`
	CanSubscribe   *bool `json:"canSubscribe,omitempty"`
	CanPublishData *bool `json:"canPublishData,omitempty"`
}

// UpdateMetadataRequest is the body for the participant metadata patch.
type UpdateMetadataRequest struct {
	Metadata string `json:"metadata" binding:"required"`
}

// MuteTrackRequest is the body for the track mute patch.
type MuteTrackRequest struct {
	Muted *bool `json:"muted" binding:"required"`
}

// AttachAgentRequest is the body for POST /api/agents/attach.
type AttachAgentRequest struct {
	RoomName     string `json:"roomName" binding:"required"`
	SystemPrompt string `json:"systemPrompt"`
}

// InitializeRoomRequest is the body for POST /api/initialize-room. RoomName
// and Identity are generated when omitted.
type InitializeRoomRequest struct {
	RoomName     string `json:"roomName,omitempty"`
	Identity     string `json:"identity,omitempty"`
	SystemPrompt string `json:"systemPrompt" binding:"required"`
}
