package store

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"voicehub/control-api/internal/domain/agent"
	"voicehub/control-api/internal/domain/room"
	"voicehub/control-api/internal/infrastructure/metrics"
)

// Reconciler periodically compares the agent registry against the rooms that
// are actually live on the platform and reports registrations whose room is
// gone. It is strictly read-only: whether a registration should outlive its
// room is a product decision, so the reconciler observes and never removes.
type Reconciler struct {
	registry agent.Registry
	rooms    room.Service
	interval time.Duration
	log      zerolog.Logger
	done     chan struct{}
	wg       sync.WaitGroup
	startOnce sync.Once
	stopOnce  sync.Once
}

// NewReconciler creates a new registry reconciler.
func NewReconciler(registry agent.Registry, rooms room.Service, interval time.Duration, log zerolog.Logger) *Reconciler {
	return &Reconciler{
		registry: registry,
		rooms:    rooms,
		interval: interval,
		log:      log.With().Str("component", "registry-reconciler").Logger(),
		done:     make(chan struct{}),
	}
}

// Start begins the reconcile loop in background.
// Safe to call multiple times - only the first call starts the loop.
func (r *Reconciler) Start(ctx context.Context) {
	r.startOnce.Do(func() {
		r.wg.Add(1)
		go r.run(ctx)
		r.log.Info().Dur("interval", r.interval).Msg("registry reconciler started")
	})
}

// Stop gracefully shuts down the reconciler.
// Safe to call multiple times - only the first call stops the loop.
func (r *Reconciler) Stop() {
	r.stopOnce.Do(func() {
		close(r.done)
		r.wg.Wait()
		r.log.Info().Msg("registry reconciler stopped")
	})
}

func (r *Reconciler) run(ctx context.Context) {
	defer r.wg.Done()

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.log.Debug().Msg("context cancelled, shutting down reconciler")
			return
		case <-r.done:
			r.log.Debug().Msg("done signal received, shutting down reconciler")
			return
		case <-ticker.C:
			r.reconcile(ctx)
		}
	}
}

// reconcile lists live rooms and reports orphaned registrations.
func (r *Reconciler) reconcile(ctx context.Context) {
	registered := r.registry.List(ctx)
	if len(registered) == 0 {
		metrics.OrphanedRegistrations.Set(0)
		return
	}

	rooms, err := r.rooms.ListRooms(ctx)
	if err != nil {
		r.log.Warn().Err(err).Msg("failed to list rooms, skipping reconcile cycle")
		return
	}

	live := make(map[string]struct{}, len(rooms))
	for _, rm := range rooms {
		live[rm.Name] = struct{}{}
	}

	var orphaned []string
	for _, name := range registered {
		if _, ok := live[name]; !ok {
			orphaned = append(orphaned, name)
		}
	}

	metrics.OrphanedRegistrations.Set(float64(len(orphaned)))

	if len(orphaned) > 0 {
		r.log.Info().
			Strs("rooms", orphaned).
			Int("registered", len(registered)).
			Int("live", len(live)).
			Msg("agent registrations without a live room")
	}
}
