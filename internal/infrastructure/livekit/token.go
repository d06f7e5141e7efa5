// Package livekit implements the platform-facing adapters: local token
// signing and the remote room management client.
package livekit

import (
	"errors"
	"fmt"
	"time"

	"github.com/livekit/protocol/auth"
	"github.com/rs/zerolog"

	"voicehub/control-api/internal/config"
	"voicehub/control-api/internal/domain/token"
	"voicehub/control-api/internal/infrastructure/metrics"
	"voicehub/control-api/internal/utils/idgen"
)

// ErrMissingCredentials is returned when token signing is attempted without
// a configured API key pair.
var ErrMissingCredentials = errors.New("livekit api key and secret are required")

// TokenIssuer signs access tokens with the server-held API key pair.
// Signing is local; no network call is involved.
type TokenIssuer struct {
	apiKey     string
	apiSecret  string
	defaultTTL time.Duration
	log        zerolog.Logger
}

var _ token.Issuer = (*TokenIssuer)(nil)

// NewTokenIssuer creates a token issuer from configuration.
func NewTokenIssuer(cfg *config.Config, log zerolog.Logger) *TokenIssuer {
	return &TokenIssuer{
		apiKey:     cfg.LiveKitAPIKey,
		apiSecret:  cfg.LiveKitAPISecret,
		defaultTTL: cfg.LiveKitTokenTTL,
		log:        log.With().Str("component", "token_issuer").Logger(),
	}
}

// IssueJoinToken signs a join-only token for the given room and identity.
// Empty room or identity are replaced with generated values, and a
// non-positive ttl falls back to the configured default.
func (i *TokenIssuer) IssueJoinToken(room, identity string, ttl time.Duration) (string, error) {
	start := time.Now()

	if i.apiKey == "" || i.apiSecret == "" {
		return "", ErrMissingCredentials
	}

	var err error
	if room == "" {
		room, err = idgen.GenerateSecureID("room", 12)
		if err != nil {
			return "", fmt.Errorf("generate room name: %w", err)
		}
	}
	if identity == "" {
		identity, err = idgen.GenerateSecureID("user", 12)
		if err != nil {
			return "", fmt.Errorf("generate identity: %w", err)
		}
	}
	if ttl <= 0 {
		ttl = i.defaultTTL
	}

	at := auth.NewAccessToken(i.apiKey, i.apiSecret)
	at.AddGrant(&auth.VideoGrant{
		RoomJoin: true,
		Room:     room,
	}).
		SetIdentity(identity).
		SetValidFor(ttl)

	jwt, err := at.ToJWT()
	if err != nil {
		return "", fmt.Errorf("sign access token: %w", err)
	}

	i.log.Debug().
		Str("room", room).
		Str("identity", identity).
		Dur("ttl", ttl).
		Msg("issued join token")
	metrics.RecordTokenIssued("join", time.Since(start))

	return jwt, nil
}

// IssuePlaygroundToken signs a full-capability token for a generated room
// and identity, for interactive testing against the platform.
func (i *TokenIssuer) IssuePlaygroundToken() (*token.PlaygroundToken, error) {
	start := time.Now()

	if i.apiKey == "" || i.apiSecret == "" {
		return nil, ErrMissingCredentials
	}

	room, err := idgen.GenerateSecureID("playground", 8)
	if err != nil {
		return nil, fmt.Errorf("generate room name: %w", err)
	}
	identity, err := idgen.GenerateSecureID("user", 12)
	if err != nil {
		return nil, fmt.Errorf("generate identity: %w", err)
	}

	canPublish := true
	canSubscribe := true
	canPublishData := true

	at := auth.NewAccessToken(i.apiKey, i.apiSecret)
	at.AddGrant(&auth.VideoGrant{
		RoomJoin:       true,
		Room:           room,
		CanPublish:     &canPublish,
		CanSubscribe:   &canSubscribe,
		CanPublishData: &canPublishData,
	}).
		SetIdentity(identity).
		SetValidFor(i.defaultTTL)

	jwt, err := at.ToJWT()
	if err != nil {
		return nil, fmt.Errorf("sign access token: %w", err)
	}

	i.log.Debug().
		Str("room", room).
		Str("identity", identity).
		Msg("issued playground token")
	metrics.RecordTokenIssued("playground", time.Since(start))

	return &token.PlaygroundToken{
		Identity:    identity,
		Room:        room,
		AccessToken: jwt,
	}, nil
}
