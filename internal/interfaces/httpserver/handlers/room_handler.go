package handlers

import (
	"context"

	"voicehub/control-api/internal/domain/room"
)

// RoomHandler handles room and participant management HTTP requests.
type RoomHandler struct {
	service room.Service
}

// NewRoomHandler creates a new room handler.
func NewRoomHandler(service room.Service) *RoomHandler {
	return &RoomHandler{service: service}
}

// CreateRoom creates a room with the given options.
func (h *RoomHandler) CreateRoom(ctx context.Context, name string, opts room.CreateOptions) (*room.Room, error) {
	return h.service.CreateRoom(ctx, name, opts)
}

// ListRooms lists all active rooms.
func (h *RoomHandler) ListRooms(ctx context.Context) ([]*room.Room, error) {
	return h.service.ListRooms(ctx)
}

// DeleteRoom deletes a room by name.
func (h *RoomHandler) DeleteRoom(ctx context.Context, name string) error {
	return h.service.DeleteRoom(ctx, name)
}

// ListParticipants lists the participants in a room.
func (h *RoomHandler) ListParticipants(ctx context.Context, roomName string) ([]*room.Participant, error) {
	return h.service.ListParticipants(ctx, roomName)
}

// GetParticipant returns a single participant by identity.
func (h *RoomHandler) GetParticipant(ctx context.Context, roomName, identity string) (*room.Participant, error) {
	return h.service.GetParticipant(ctx, roomName, identity)
}

// UpdateParticipantPermissions updates a participant's capability flags.
func (h *RoomHandler) UpdateParticipantPermissions(ctx context.Context, roomName, identity string, perms room.Permissions) error {
	return h.service.UpdateParticipantPermissions(ctx, roomName, identity, perms)
}

// UpdateParticipantMetadata replaces a participant's metadata.
func (h *RoomHandler) UpdateParticipantMetadata(ctx context.Context, roomName, identity, metadata string) error {
	return h.service.UpdateParticipantMetadata(ctx, roomName, identity, metadata)
}

// RemoveParticipant disconnects a participant.
func (h *RoomHandler) RemoveParticipant(ctx context.Context, roomName, identity string) error {
	return h.service.RemoveParticipant(ctx, roomName, identity)
}

// MuteParticipantTrack mutes or unmutes a published track.
func (h *RoomHandler) MuteParticipantTrack(ctx context.Context, roomName, identity, trackSID string, muted bool) (*room.Track, error) {
	return h.service.MuteParticipantTrack(ctx, roomName, identity, trackSID, muted)
}
