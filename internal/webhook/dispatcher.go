// Package webhook routes verified platform webhook events to per-kind
// handlers. Verification of the signed payload happens at the HTTP layer;
// the dispatcher only deals in decoded events.
package webhook

import (
	"context"

	"github.com/livekit/protocol/livekit"
	"github.com/livekit/protocol/webhook"
	"github.com/rs/zerolog"

	"voicehub/control-api/internal/infrastructure/metrics"
)

// Handlers holds the optional per-kind callbacks. Nil fields mean the kind
// is acknowledged but ignored.
type Handlers struct {
	RoomStarted       func(ctx context.Context, event *livekit.WebhookEvent)
	RoomFinished      func(ctx context.Context, event *livekit.WebhookEvent)
	ParticipantJoined func(ctx context.Context, event *livekit.WebhookEvent)
	ParticipantLeft   func(ctx context.Context, event *livekit.WebhookEvent)
	TrackPublished    func(ctx context.Context, event *livekit.WebhookEvent)
	TrackUnpublished  func(ctx context.Context, event *livekit.WebhookEvent)
}

// Dispatcher fans verified events out to handlers by kind.
type Dispatcher struct {
	handlers Handlers
	log      zerolog.Logger
}

// NewDispatcher creates a dispatcher with the given handlers.
func NewDispatcher(handlers Handlers, log zerolog.Logger) *Dispatcher {
	return &Dispatcher{
		handlers: handlers,
		log:      log.With().Str("component", "webhook_dispatcher").Logger(),
	}
}

// Dispatch routes the event to its handler. Unknown kinds are logged and
// acknowledged; dispatch never fails once the event is verified.
func (d *Dispatcher) Dispatch(ctx context.Context, event *livekit.WebhookEvent) {
	metrics.RecordWebhookEvent(event.Event)

	log := d.log.With().Str("event", event.Event).Str("id", event.Id).Logger()
	if event.Room != nil {
		log = log.With().Str("room", event.Room.Name).Logger()
	}
	if event.Participant != nil {
		log = log.With().Str("identity", event.Participant.Identity).Logger()
	}

	switch event.Event {
	case webhook.EventRoomStarted:
		log.Info().Msg("room started")
		d.call(ctx, d.handlers.RoomStarted, event)
	case webhook.EventRoomFinished:
		log.Info().Msg("room finished")
		d.call(ctx, d.handlers.RoomFinished, event)
	case webhook.EventParticipantJoined:
		log.Info().Msg("participant joined")
		d.call(ctx, d.handlers.ParticipantJoined, event)
	case webhook.EventParticipantLeft:
		log.Info().Msg("participant left")
		d.call(ctx, d.handlers.ParticipantLeft, event)
	case webhook.EventTrackPublished:
		log.Info().Msg("track published")
		d.call(ctx, d.handlers.TrackPublished, event)
	case webhook.EventTrackUnpublished:
		log.Info().Msg("track unpublished")
		d.call(ctx, d.handlers.TrackUnpublished, event)
	default:
		log.Debug().Msg("unhandled webhook event")
	}
}

func (d *Dispatcher) call(ctx context.Context, fn func(context.Context, *livekit.WebhookEvent), event *livekit.WebhookEvent) {
	if fn == nil {
		return
	}
	fn(ctx, event)
}
