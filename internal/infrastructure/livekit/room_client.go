package livekit

import (
	"context"
	"time"

	"github.com/livekit/protocol/livekit"
	lksdk "github.com/livekit/server-sdk-go/v2"
	"github.com/rs/zerolog"

	"voicehub/control-api/internal/config"
	"voicehub/control-api/internal/domain/room"
	"voicehub/control-api/internal/infrastructure/metrics"
)

// RoomClient implements the room management facade over the platform's
// RoomService RPC API. It holds no room state; every call goes to the
// platform and errors are returned unchanged.
type RoomClient struct {
	client              *lksdk.RoomServiceClient
	defaultEmptyTimeout time.Duration
	defaultMaxParts     int
	log                 zerolog.Logger
}

var _ room.Service = (*RoomClient)(nil)

// NewRoomClient creates a room client from configuration.
func NewRoomClient(cfg *config.Config, log zerolog.Logger) *RoomClient {
	client := lksdk.NewRoomServiceClient(cfg.LiveKitURL, cfg.LiveKitAPIKey, cfg.LiveKitAPISecret)
	return &RoomClient{
		client:              client,
		defaultEmptyTimeout: cfg.RoomEmptyTimeout,
		defaultMaxParts:     cfg.RoomMaxParticipants,
		log:                 log.With().Str("component", "room_client").Logger(),
	}
}

// CreateRoom creates a room, filling unset options with the configured
// defaults. Creating a room that already exists returns the existing room.
func (c *RoomClient) CreateRoom(ctx context.Context, name string, opts room.CreateOptions) (*room.Room, error) {
	emptyTimeout := opts.EmptyTimeout
	if emptyTimeout <= 0 {
		emptyTimeout = c.defaultEmptyTimeout
	}
	maxParticipants := opts.MaxParticipants
	if maxParticipants <= 0 {
		maxParticipants = c.defaultMaxParts
	}

	start := time.Now()
	resp, err := c.client.CreateRoom(ctx, &livekit.CreateRoomRequest{
		Name:            name,
		EmptyTimeout:    uint32(emptyTimeout.Seconds()),
		MaxParticipants: uint32(maxParticipants),
	})
	metrics.RecordPlatformCall("create_room", time.Since(start), err)
	if err != nil {
		c.log.Error().Err(err).Str("room", name).Msg("create room failed")
		return nil, err
	}

	c.log.Info().
		Str("room", resp.Name).
		Uint32("empty_timeout", resp.EmptyTimeout).
		Uint32("max_participants", resp.MaxParticipants).
		Msg("room created")
	return toRoom(resp), nil
}

// ListRooms returns all active rooms.
func (c *RoomClient) ListRooms(ctx context.Context) ([]*room.Room, error) {
	start := time.Now()
	resp, err := c.client.ListRooms(ctx, &livekit.ListRoomsRequest{})
	metrics.RecordPlatformCall("list_rooms", time.Since(start), err)
	if err != nil {
		c.log.Error().Err(err).Msg("list rooms failed")
		return nil, err
	}

	rooms := make([]*room.Room, 0, len(resp.Rooms))
	for _, r := range resp.Rooms {
		rooms = append(rooms, toRoom(r))
	}
	return rooms, nil
}

// DeleteRoom deletes a room, disconnecting any remaining participants.
func (c *RoomClient) DeleteRoom(ctx context.Context, name string) error {
	start := time.Now()
	_, err := c.client.DeleteRoom(ctx, &livekit.DeleteRoomRequest{Room: name})
	metrics.RecordPlatformCall("delete_room", time.Since(start), err)
	if err != nil {
		c.log.Error().Err(err).Str("room", name).Msg("delete room failed")
		return err
	}

	c.log.Info().Str("room", name).Msg("room deleted")
	return nil
}

// ListParticipants returns all participants connected to a room.
func (c *RoomClient) ListParticipants(ctx context.Context, roomName string) ([]*room.Participant, error) {
	start := time.Now()
	resp, err := c.client.ListParticipants(ctx, &livekit.ListParticipantsRequest{Room: roomName})
	metrics.RecordPlatformCall("list_participants", time.Since(start), err)
	if err != nil {
		c.log.Error().Err(err).Str("room", roomName).Msg("list participants failed")
		return nil, err
	}

	participants := make([]*room.Participant, 0, len(resp.Participants))
	for _, p := range resp.Participants {
		participants = append(participants, toParticipant(p))
	}
	return participants, nil
}

// GetParticipant returns a single participant by identity.
func (c *RoomClient) GetParticipant(ctx context.Context, roomName, identity string) (*room.Participant, error) {
	start := time.Now()
	resp, err := c.client.GetParticipant(ctx, &livekit.RoomParticipantIdentity{
		Room:     roomName,
		Identity: identity,
	})
	metrics.RecordPlatformCall("get_participant", time.Since(start), err)
	if err != nil {
		c.log.Error().Err(err).
			Str("room", roomName).
			Str("identity", identity).
			Msg("get participant failed")
		return nil, err
	}
	return toParticipant(resp), nil
}

// UpdateParticipantPermissions updates a participant's capability flags.
// The platform API replaces the whole permission set, so the current
// permissions are fetched first and nil fields keep their current value.
func (c *RoomClient) UpdateParticipantPermissions(ctx context.Context, roomName, identity string, perms room.Permissions) error {
	current, err := c.GetParticipant(ctx, roomName, identity)
	if err != nil {
		return err
	}

	merged := &livekit.ParticipantPermission{}
	if cur := current.Permission; cur != nil {
		if cur.CanPublish != nil {
			merged.CanPublish = *cur.CanPublish
		}
		if cur.CanSubscribe != nil {
			merged.CanSubscribe = *cur.CanSubscribe
		}
		if cur.CanPublishData != nil {
			merged.CanPublishData = *cur.CanPublishData
		}
	}
	if perms.CanPublish != nil {
		merged.CanPublish = *perms.CanPublish
	}
	if perms.CanSubscribe != nil {
		merged.CanSubscribe = *perms.CanSubscribe
	}
	if perms.CanPublishData != nil {
		merged.CanPublishData = *perms.CanPublishData
	}

	start := time.Now()
	_, err = c.client.UpdateParticipant(ctx, &livekit.UpdateParticipantRequest{
		Room:       roomName,
		Identity:   identity,
		Permission: merged,
	})
	metrics.RecordPlatformCall("update_participant_permissions", time.Since(start), err)
	if err != nil {
		c.log.Error().Err(err).
			Str("room", roomName).
			Str("identity", identity).
			Msg("update participant permissions failed")
		return err
	}

	c.log.Info().
		Str("room", roomName).
		Str("identity", identity).
		Msg("participant permissions updated")
	return nil
}

// UpdateParticipantMetadata replaces a participant's metadata string.
func (c *RoomClient) UpdateParticipantMetadata(ctx context.Context, roomName, identity, metadata string) error {
	start := time.Now()
	_, err := c.client.UpdateParticipant(ctx, &livekit.UpdateParticipantRequest{
		Room:     roomName,
		Identity: identity,
		Metadata: metadata,
	})
	metrics.RecordPlatformCall("update_participant_metadata", time.Since(start), err)
	if err != nil {
		c.log.Error().Err(err).
			Str("room", roomName).
			Str("identity", identity).
			Msg("update participant metadata failed")
		return err
	}

	c.log.Info().
		Str("room", roomName).
		Str("identity", identity).
		Msg("participant metadata updated")
	return nil
}

// RemoveParticipant disconnects a participant from a room.
func (c *RoomClient) RemoveParticipant(ctx context.Context, roomName, identity string) error {
	start := time.Now()
	_, err := c.client.RemoveParticipant(ctx, &livekit.RoomParticipantIdentity{
		Room:     roomName,
		Identity: identity,
	})
	metrics.RecordPlatformCall("remove_participant", time.Since(start), err)
	if err != nil {
		c.log.Error().Err(err).
			Str("room", roomName).
			Str("identity", identity).
			Msg("remove participant failed")
		return err
	}

	c.log.Info().
		Str("room", roomName).
		Str("identity", identity).
		Msg("participant removed")
	return nil
}

// MuteParticipantTrack mutes or unmutes a published track and returns the
// track's resulting state.
func (c *RoomClient) MuteParticipantTrack(ctx context.Context, roomName, identity, trackSID string, muted bool) (*room.Track, error) {
	start := time.Now()
	resp, err := c.client.MutePublishedTrack(ctx, &livekit.MuteRoomTrackRequest{
		Room:     roomName,
		Identity: identity,
		TrackSid: trackSID,
		Muted:    muted,
	})
	metrics.RecordPlatformCall("mute_published_track", time.Since(start), err)
	if err != nil {
		c.log.Error().Err(err).
			Str("room", roomName).
			Str("identity", identity).
			Str("track", trackSID).
			Msg("mute track failed")
		return nil, err
	}

	c.log.Info().
		Str("room", roomName).
		Str("identity", identity).
		Str("track", trackSID).
		Bool("muted", muted).
		Msg("track mute updated")

	if resp.Track == nil {
		return &room.Track{SID: trackSID, Muted: muted}, nil
	}
	return toTrack(resp.Track), nil
}

func toRoom(r *livekit.Room) *room.Room {
	return &room.Room{
		SID:             r.Sid,
		Name:            r.Name,
		EmptyTimeout:    r.EmptyTimeout,
		MaxParticipants: r.MaxParticipants,
		NumParticipants: r.NumParticipants,
		CreationTime:    r.CreationTime,
		Metadata:        r.Metadata,
	}
}

func toParticipant(p *livekit.ParticipantInfo) *room.Participant {
	out := &room.Participant{
		SID:      p.Sid,
		Identity: p.Identity,
		State:    p.State.String(),
		Metadata: p.Metadata,
		JoinedAt: p.JoinedAt,
		Tracks:   make([]room.Track, 0, len(p.Tracks)),
	}
	if p.Permission != nil {
		canPublish := p.Permission.CanPublish
		canSubscribe := p.Permission.CanSubscribe
		canPublishData := p.Permission.CanPublishData
		out.Permission = &room.Permissions{
			CanPublish:     &canPublish,
			CanSubscribe:   &canSubscribe,
			CanPublishData: &canPublishData,
		}
	}
	for _, t := range p.Tracks {
		out.Tracks = append(out.Tracks, *toTrack(t))
	}
	return out
}

func toTrack(t *livekit.TrackInfo) *room.Track {
	return &room.Track{
		SID:   t.Sid,
		Name:  t.Name,
		Type:  t.Type.String(),
		Muted: t.Muted,
	}
}
