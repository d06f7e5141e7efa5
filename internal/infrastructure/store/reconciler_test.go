package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"voicehub/control-api/internal/domain/room"
)

type mockRoomLister struct {
	room.Service
	ListRoomsFunc func(ctx context.Context) ([]*room.Room, error)
}

func (m *mockRoomLister) ListRooms(ctx context.Context) ([]*room.Room, error) {
	return m.ListRoomsFunc(ctx)
}

func TestReconciler_NeverRemovesRegistrations(t *testing.T) {
	ctx := context.Background()
	registry := newTestRegistry()
	registry.Attach(ctx, "live-room", "p")
	registry.Attach(ctx, "gone-room", "p")

	rooms := &mockRoomLister{
		ListRoomsFunc: func(ctx context.Context) ([]*room.Room, error) {
			return []*room.Room{{Name: "live-room"}}, nil
		},
	}

	r := NewReconciler(registry, rooms, time.Minute, zerolog.Nop())
	r.reconcile(ctx)

	// Both registrations survive, including the orphaned one.
	if _, ok := registry.Get(ctx, "gone-room"); !ok {
		t.Error("reconcile removed the orphaned registration")
	}
	if _, ok := registry.Get(ctx, "live-room"); !ok {
		t.Error("reconcile removed a live registration")
	}
}

func TestReconciler_SkipsCycleOnPlatformError(t *testing.T) {
	ctx := context.Background()
	registry := newTestRegistry()
	registry.Attach(ctx, "demo", "p")

	rooms := &mockRoomLister{
		ListRoomsFunc: func(ctx context.Context) ([]*room.Room, error) {
			return nil, errors.New("platform unavailable")
		},
	}

	r := NewReconciler(registry, rooms, time.Minute, zerolog.Nop())
	r.reconcile(ctx)

	if _, ok := registry.Get(ctx, "demo"); !ok {
		t.Error("reconcile with platform error must not touch the registry")
	}
}

func TestReconciler_StartStopIdempotent(t *testing.T) {
	registry := newTestRegistry()
	rooms := &mockRoomLister{
		ListRoomsFunc: func(ctx context.Context) ([]*room.Room, error) {
			return nil, nil
		},
	}

	r := NewReconciler(registry, rooms, 10*time.Millisecond, zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	r.Start(ctx)
	r.Start(ctx)
	time.Sleep(30 * time.Millisecond)
	r.Stop()
	r.Stop()
}
