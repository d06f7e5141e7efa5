package livekit

import (
	"testing"

	"github.com/livekit/protocol/livekit"
)

func TestToRoom(t *testing.T) {
	r := toRoom(&livekit.Room{
		Sid:             "RM_abc",
		Name:            "demo",
		EmptyTimeout:    600,
		MaxParticipants: 20,
		NumParticipants: 3,
		CreationTime:    1700000000,
		Metadata:        "{}",
	})

	if r.SID != "RM_abc" || r.Name != "demo" {
		t.Errorf("unexpected identifiers: %+v", r)
	}
	if r.EmptyTimeout != 600 || r.MaxParticipants != 20 || r.NumParticipants != 3 {
		t.Errorf("unexpected counts: %+v", r)
	}
	if r.CreationTime != 1700000000 || r.Metadata != "{}" {
		t.Errorf("unexpected fields: %+v", r)
	}
}

func TestToParticipant(t *testing.T) {
	p := toParticipant(&livekit.ParticipantInfo{
		Sid:      "PA_xyz",
		Identity: "alice",
		State:    livekit.ParticipantInfo_ACTIVE,
		JoinedAt: 1700000100,
		Permission: &livekit.ParticipantPermission{
			CanPublish:     true,
			CanSubscribe:   true,
			CanPublishData: false,
		},
		Tracks: []*livekit.TrackInfo{
			{Sid: "TR_1", Name: "mic", Type: livekit.TrackType_AUDIO, Muted: true},
		},
	})

	if p.SID != "PA_xyz" || p.Identity != "alice" {
		t.Errorf("unexpected identifiers: %+v", p)
	}
	if p.State != "ACTIVE" {
		t.Errorf("state = %q, want ACTIVE", p.State)
	}
	if p.Permission == nil {
		t.Fatal("permission not converted")
	}
	if !*p.Permission.CanPublish || !*p.Permission.CanSubscribe || *p.Permission.CanPublishData {
		t.Errorf("unexpected permission: %+v", p.Permission)
	}
	if len(p.Tracks) != 1 {
		t.Fatalf("tracks = %d, want 1", len(p.Tracks))
	}
	track := p.Tracks[0]
	if track.SID != "TR_1" || track.Type != "AUDIO" || !track.Muted {
		t.Errorf("unexpected track: %+v", track)
	}
}

func TestToParticipant_NoPermission(t *testing.T) {
	p := toParticipant(&livekit.ParticipantInfo{
		Sid:      "PA_1",
		Identity: "bob",
		State:    livekit.ParticipantInfo_JOINED,
	})

	if p.Permission != nil {
		t.Errorf("permission = %+v, want nil", p.Permission)
	}
	if p.Tracks == nil || len(p.Tracks) != 0 {
		t.Errorf("tracks should be empty non-nil slice, got %+v", p.Tracks)
	}
}
