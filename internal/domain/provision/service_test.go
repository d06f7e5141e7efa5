package provision

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"voicehub/control-api/internal/domain/agent"
	"voicehub/control-api/internal/domain/room"
	"voicehub/control-api/internal/domain/token"
	"voicehub/control-api/internal/utils/idgen"
)

// mockRoomService is a func-field mock of room.Service.
type mockRoomService struct {
	room.Service
	CreateRoomFunc func(ctx context.Context, name string, opts room.CreateOptions) (*room.Room, error)
}

func (m *mockRoomService) CreateRoom(ctx context.Context, name string, opts room.CreateOptions) (*room.Room, error) {
	return m.CreateRoomFunc(ctx, name, opts)
}

type mockRegistry struct {
	attached map[string]string
}

func (m *mockRegistry) Attach(ctx context.Context, roomName, systemPrompt string) (*agent.Registration, error) {
	if m.attached == nil {
		m.attached = make(map[string]string)
	}
	m.attached[roomName] = systemPrompt
	return &agent.Registration{RoomName: roomName, SystemPrompt: systemPrompt, CreatedAt: time.Now()}, nil
}

func (m *mockRegistry) Get(ctx context.Context, roomName string) (*agent.Registration, bool) {
	prompt, ok := m.attached[roomName]
	if !ok {
		return nil, false
	}
	return &agent.Registration{RoomName: roomName, SystemPrompt: prompt}, true
}

func (m *mockRegistry) List(ctx context.Context) []string {
	names := make([]string, 0, len(m.attached))
	for name := range m.attached {
		names = append(names, name)
	}
	return names
}

func (m *mockRegistry) Remove(ctx context.Context, roomName string) bool {
	_, ok := m.attached[roomName]
	delete(m.attached, roomName)
	return ok
}

func (m *mockRegistry) Details(ctx context.Context) map[string]*agent.Registration {
	out := make(map[string]*agent.Registration, len(m.attached))
	for name, prompt := range m.attached {
		out[name] = &agent.Registration{RoomName: name, SystemPrompt: prompt}
	}
	return out
}

type mockIssuer struct {
	IssueJoinTokenFunc func(room, identity string, ttl time.Duration) (string, error)
}

func (m *mockIssuer) IssueJoinToken(room, identity string, ttl time.Duration) (string, error) {
	return m.IssueJoinTokenFunc(room, identity, ttl)
}

func (m *mockIssuer) IssuePlaygroundToken() (*token.PlaygroundToken, error) {
	return nil, errors.New("not implemented")
}

func TestInitializeRoom_GeneratesNamesAndToken(t *testing.T) {
	registry := &mockRegistry{}
	var createdName string
	svc := NewService(
		&mockRoomService{
			CreateRoomFunc: func(ctx context.Context, name string, opts room.CreateOptions) (*room.Room, error) {
				createdName = name
				return &room.Room{SID: "RM_test", Name: name}, nil
			},
		},
		registry,
		&mockIssuer{
			IssueJoinTokenFunc: func(room, identity string, ttl time.Duration) (string, error) {
				return "signed-token", nil
			},
		},
		zerolog.Nop(),
	)

	result, err := svc.InitializeRoom(context.Background(), &Request{SystemPrompt: "be helpful"})
	if err != nil {
		t.Fatalf("InitializeRoom() error = %v", err)
	}

	if !idgen.ValidateIDFormat(result.Room.Name, "room") {
		t.Errorf("generated room name %q does not match room_* pattern", result.Room.Name)
	}
	if !idgen.ValidateIDFormat(result.Identity, "user") {
		t.Errorf("generated identity %q does not match user_* pattern", result.Identity)
	}
	if result.Token != "signed-token" {
		t.Errorf("Token = %q, want signed-token", result.Token)
	}
	if createdName != result.Room.Name {
		t.Errorf("created room %q does not match result room %q", createdName, result.Room.Name)
	}
	if _, ok := registry.Get(context.Background(), result.Room.Name); !ok {
		t.Errorf("registry has no entry for generated room %q", result.Room.Name)
	}
}

func TestInitializeRoom_UsesProvidedNames(t *testing.T) {
	registry := &mockRegistry{}
	svc := NewService(
		&mockRoomService{
			CreateRoomFunc: func(ctx context.Context, name string, opts room.CreateOptions) (*room.Room, error) {
				return &room.Room{SID: "RM_x", Name: name}, nil
			},
		},
		registry,
		&mockIssuer{
			IssueJoinTokenFunc: func(room, identity string, ttl time.Duration) (string, error) {
				if room != "demo" || identity != "alice" {
					t.Errorf("token issued for (%s, %s), want (demo, alice)", room, identity)
				}
				return "tok", nil
			},
		},
		zerolog.Nop(),
	)

	result, err := svc.InitializeRoom(context.Background(), &Request{
		RoomName:     "demo",
		Identity:     "alice",
		SystemPrompt: "prompt",
	})
	if err != nil {
		t.Fatalf("InitializeRoom() error = %v", err)
	}
	if result.Room.Name != "demo" || result.Identity != "alice" {
		t.Errorf("got (%s, %s), want (demo, alice)", result.Room.Name, result.Identity)
	}
}

func TestInitializeRoom_RoomCreationFailureAborts(t *testing.T) {
	registry := &mockRegistry{}
	wantErr := errors.New("platform unavailable")
	svc := NewService(
		&mockRoomService{
			CreateRoomFunc: func(ctx context.Context, name string, opts room.CreateOptions) (*room.Room, error) {
				return nil, wantErr
			},
		},
		registry,
		&mockIssuer{
			IssueJoinTokenFunc: func(room, identity string, ttl time.Duration) (string, error) {
				t.Error("token should not be issued when room creation fails")
				return "", nil
			},
		},
		zerolog.Nop(),
	)

	_, err := svc.InitializeRoom(context.Background(), &Request{SystemPrompt: "p"})
	if !errors.Is(err, wantErr) {
		t.Fatalf("InitializeRoom() error = %v, want %v", err, wantErr)
	}
	if len(registry.List(context.Background())) != 0 {
		t.Errorf("registry should stay empty when room creation fails")
	}
}
