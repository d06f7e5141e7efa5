// Package room defines the typed facade over the platform's room and
// participant management API. The facade is a stateless pass-through: rooms
// and participants are owned by the platform, never cached locally.
package room

import (
	"context"
	"time"
)

// Room describes a platform-managed room.
type Room struct {
	SID             string `json:"sid"`
	Name            string `json:"name"`
	EmptyTimeout    uint32 `json:"emptyTimeout"`
	MaxParticipants uint32 `json:"maxParticipants"`
	NumParticipants uint32 `json:"numParticipants"`
	CreationTime    int64  `json:"creationTime"`
	Metadata        string `json:"metadata,omitempty"`
}

// Participant describes an identity connected to a room.
type Participant struct {
	SID        string       `json:"sid"`
	Identity   string       `json:"identity"`
	State      string       `json:"state"`
	Metadata   string       `json:"metadata,omitempty"`
	JoinedAt   int64        `json:"joinedAt"`
	Permission *Permissions `json:"permission,omitempty"`
	Tracks     []Track      `json:"tracks"`
}

// Track describes a published media track.
type Track struct {
	SID   string `json:"sid"`
	Name  string `json:"name,omitempty"`
	Type  string `json:"type"`
	Muted bool   `json:"muted"`
}

// Permissions carries the per-participant capability flags the facade can
// update. Nil pointer fields mean "leave unchanged".
type Permissions struct {
	CanPublish     *bool `json:"canPublish,omitempty"`
	CanSubscribe   *bool `json:"canSubscribe,omitempty"`
	CanPublishData *bool `json:"canPublishData,omitempty"`
}

// CreateOptions holds the optional create-room parameters. Zero values are
// replaced with the configured defaults (600s empty timeout, 20 max
// participants).
type CreateOptions struct {
	EmptyTimeout    time.Duration
	MaxParticipants int
}

// Service is the management facade. Every operation is a single remote call
// against the platform; errors are logged with call context and returned
// unchanged, with no retries and no masking.
type Service interface {
	CreateRoom(ctx context.Context, name string, opts CreateOptions) (*Room, error)
	ListRooms(ctx context.Context) ([]*Room, error)
	DeleteRoom(ctx context.Context, name string) error

	ListParticipants(ctx context.Context, roomName string) ([]*Participant, error)
	GetParticipant(ctx context.Context, roomName, identity string) (*Participant, error)
	UpdateParticipantPermissions(ctx context.Context, roomName, identity string, perms Permissions) error
	UpdateParticipantMetadata(ctx context.Context, roomName, identity, metadata string) error
	RemoveParticipant(ctx context.Context, roomName, identity string) error
	MuteParticipantTrack(ctx context.Context, roomName, identity, trackSID string, muted bool) (*Track, error)
}
