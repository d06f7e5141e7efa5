package store

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"voicehub/control-api/internal/domain/agent"
	"voicehub/control-api/internal/infrastructure/metrics"
)

// MemoryRegistry is a mutex-based in-memory agent registry.
// Thread-safe via sync.RWMutex. Process-local and non-persistent: a restart
// loses all registrations, and two instances running side by side diverge.
type MemoryRegistry struct {
	mu            sync.RWMutex
	registrations map[string]*agent.Registration
	log           zerolog.Logger
}

// NewMemoryRegistry creates a new in-memory agent registry.
func NewMemoryRegistry(log zerolog.Logger) *MemoryRegistry {
	return &MemoryRegistry{
		registrations: make(map[string]*agent.Registration),
		log:           log.With().Str("component", "agent-registry").Logger(),
	}
}

// Attach inserts or overwrites the registration for roomName.
// CreatedAt is refreshed on overwrite.
func (r *MemoryRegistry) Attach(ctx context.Context, roomName, systemPrompt string) (*agent.Registration, error) {
	if systemPrompt == "" {
		systemPrompt = agent.DefaultSystemPrompt
	}

	reg := &agent.Registration{
		RoomName:     roomName,
		SystemPrompt: systemPrompt,
		CreatedAt:    time.Now(),
	}

	r.mu.Lock()
	_, replaced := r.registrations[roomName]
	r.registrations[roomName] = reg
	size := len(r.registrations)
	r.mu.Unlock()

	metrics.AgentRegistrations.Set(float64(size))

	r.log.Info().
		Str("room", roomName).
		Bool("replaced", replaced).
		Msg("agent registered")

	return reg, nil
}

// Get retrieves the registration for roomName.
func (r *MemoryRegistry) Get(ctx context.Context, roomName string) (*agent.Registration, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reg, ok := r.registrations[roomName]
	return reg, ok
}

// List returns the registered room names in unspecified order.
func (r *MemoryRegistry) List(ctx context.Context) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.registrations))
	for name := range r.registrations {
		names = append(names, name)
	}
	return names
}

// Remove deletes the registration for roomName.
func (r *MemoryRegistry) Remove(ctx context.Context, roomName string) bool {
	r.mu.Lock()
	_, ok := r.registrations[roomName]
	delete(r.registrations, roomName)
	size := len(r.registrations)
	r.mu.Unlock()

	metrics.AgentRegistrations.Set(float64(size))

	if ok {
		r.log.Info().Str("room", roomName).Msg("agent registration removed")
	}
	return ok
}

// Details returns a snapshot of all registrations keyed by room name.
func (r *MemoryRegistry) Details(ctx context.Context) map[string]*agent.Registration {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]*agent.Registration, len(r.registrations))
	for name, reg := range r.registrations {
		out[name] = reg
	}
	return out
}
