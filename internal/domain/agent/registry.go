package agent

import "context"

// Registry holds agent registrations keyed by room name.
//
// The interface takes a context on every method so a shared external store
// can back it later without touching call sites; the in-memory
// implementation ignores the context.
type Registry interface {
	// Attach inserts or overwrites the registration for roomName.
	// Overwriting refreshes CreatedAt.
	Attach(ctx context.Context, roomName, systemPrompt string) (*Registration, error)

	// Get retrieves the registration for roomName, or nil when absent.
	Get(ctx context.Context, roomName string) (*Registration, bool)

	// List returns the registered room names. Order is unspecified.
	List(ctx context.Context) []string

	// Remove deletes the registration for roomName and reports whether
	// an entry existed.
	Remove(ctx context.Context, roomName string) bool

	// Details returns all registrations keyed by room name.
	Details(ctx context.Context) map[string]*Registration
}
