// Package provision implements the composite room-initialization flow:
// create a room, register an agent for it, and issue a join token for the
// caller in a single operation.
package provision

import (
	"context"

	"github.com/rs/zerolog"

	"voicehub/control-api/internal/domain/agent"
	"voicehub/control-api/internal/domain/room"
	"voicehub/control-api/internal/domain/token"
	"voicehub/control-api/internal/utils/idgen"
)

// Request carries the initialize-room parameters. RoomName and Identity are
// optional; SystemPrompt is required at the HTTP boundary.
type Request struct {
	RoomName     string
	Identity     string
	SystemPrompt string
}

// Result is the composite outcome returned to the client.
type Result struct {
	Room     *room.Room
	Identity string
	Token    string
}

// Service initializes rooms end to end.
type Service interface {
	InitializeRoom(ctx context.Context, req *Request) (*Result, error)
}

type service struct {
	rooms    room.Service
	registry agent.Registry
	issuer   token.Issuer
	log      zerolog.Logger
}

// NewService creates a new provision service.
func NewService(rooms room.Service, registry agent.Registry, issuer token.Issuer, log zerolog.Logger) Service {
	return &service{
		rooms:    rooms,
		registry: registry,
		issuer:   issuer,
		log:      log.With().Str("component", "provision-service").Logger(),
	}
}

func (s *service) InitializeRoom(ctx context.Context, req *Request) (*Result, error) {
	roomName := req.RoomName
	if roomName == "" {
		generated, err := idgen.GenerateSecureID("room", 16)
		if err != nil {
			s.log.Error().Err(err).Msg("failed to generate room name")
			return nil, err
		}
		roomName = generated
	}

	identity := req.Identity
	if identity == "" {
		generated, err := idgen.GenerateSecureID("user", 16)
		if err != nil {
			s.log.Error().Err(err).Msg("failed to generate identity")
			return nil, err
		}
		identity = generated
	}

	created, err := s.rooms.CreateRoom(ctx, roomName, room.CreateOptions{})
	if err != nil {
		s.log.Error().Err(err).Str("room", roomName).Msg("failed to create room")
		return nil, err
	}

	if _, err := s.registry.Attach(ctx, roomName, req.SystemPrompt); err != nil {
		s.log.Error().Err(err).Str("room", roomName).Msg("failed to register agent")
		return nil, err
	}

	signed, err := s.issuer.IssueJoinToken(roomName, identity, 0)
	if err != nil {
		s.log.Error().Err(err).Str("room", roomName).Msg("failed to issue token")
		return nil, err
	}

	s.log.Info().
		Str("room", roomName).
		Str("identity", identity).
		Msg("room initialized with agent")

	return &Result{
		Room:     created,
		Identity: identity,
		Token:    signed,
	}, nil
}
