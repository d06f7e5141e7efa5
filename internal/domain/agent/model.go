package agent

import "time"

// Registration records that a voice agent is expected to serve a room.
// It is a control-plane bookkeeping entry only; the agent process itself
// is scheduled by the platform's worker system, not by this service.
type Registration struct {
	RoomName     string    `json:"roomName"`
	SystemPrompt string    `json:"systemPrompt"`
	CreatedAt    time.Time `json:"createdAt"`
}

// DefaultSystemPrompt is applied when an attach request omits the prompt.
const DefaultSystemPrompt = "You are a helpful voice assistant."
