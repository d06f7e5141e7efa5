package store

import (
	"context"
	"sort"
	"sync"
	"testing"

	"github.com/rs/zerolog"
)

func newTestRegistry() *MemoryRegistry {
	return NewMemoryRegistry(zerolog.Nop())
}

func TestMemoryRegistry_AttachThenGet(t *testing.T) {
	registry := newTestRegistry()
	ctx := context.Background()

	reg, err := registry.Attach(ctx, "demo", "be concise")
	if err != nil {
		t.Fatalf("Attach() error = %v", err)
	}
	if reg.SystemPrompt != "be concise" {
		t.Errorf("Attach() prompt = %q, want %q", reg.SystemPrompt, "be concise")
	}
	if reg.CreatedAt.IsZero() {
		t.Error("Attach() CreatedAt is zero")
	}

	got, ok := registry.Get(ctx, "demo")
	if !ok {
		t.Fatal("Get() after Attach() returned not found")
	}
	if got.SystemPrompt != "be concise" {
		t.Errorf("Get() prompt = %q, want %q", got.SystemPrompt, "be concise")
	}
}

func TestMemoryRegistry_AttachOverwriteRefreshesCreatedAt(t *testing.T) {
	registry := newTestRegistry()
	ctx := context.Background()

	first, _ := registry.Attach(ctx, "demo", "v1")
	second, _ := registry.Attach(ctx, "demo", "v2")

	if second.SystemPrompt != "v2" {
		t.Errorf("overwrite prompt = %q, want v2", second.SystemPrompt)
	}
	if second.CreatedAt.Before(first.CreatedAt) {
		t.Errorf("overwrite CreatedAt %v is before original %v", second.CreatedAt, first.CreatedAt)
	}
	if names := registry.List(ctx); len(names) != 1 {
		t.Errorf("List() after overwrite = %v, want single entry", names)
	}
}

func TestMemoryRegistry_AttachEmptyPromptUsesDefault(t *testing.T) {
	registry := newTestRegistry()

	reg, _ := registry.Attach(context.Background(), "demo", "")
	if reg.SystemPrompt == "" {
		t.Error("Attach() with empty prompt left prompt empty")
	}
}

func TestMemoryRegistry_Remove(t *testing.T) {
	registry := newTestRegistry()
	ctx := context.Background()

	if registry.Remove(ctx, "absent") {
		t.Error("Remove() of unknown room = true, want false")
	}

	registry.Attach(ctx, "demo", "p")
	if !registry.Remove(ctx, "demo") {
		t.Error("Remove() of registered room = false, want true")
	}
	if registry.Remove(ctx, "demo") {
		t.Error("double Remove() = true, want false")
	}
	if _, ok := registry.Get(ctx, "demo"); ok {
		t.Error("Get() after Remove() found entry")
	}
}

func TestMemoryRegistry_ListSetSemantics(t *testing.T) {
	registry := newTestRegistry()
	ctx := context.Background()

	registry.Attach(ctx, "A", "a")
	registry.Attach(ctx, "B", "b")
	registry.Remove(ctx, "A")

	names := registry.List(ctx)
	sort.Strings(names)
	if len(names) != 1 || names[0] != "B" {
		t.Errorf("List() = %v, want [B]", names)
	}
}

func TestMemoryRegistry_Details(t *testing.T) {
	registry := newTestRegistry()
	ctx := context.Background()

	registry.Attach(ctx, "A", "prompt-a")
	registry.Attach(ctx, "B", "prompt-b")

	details := registry.Details(ctx)
	if len(details) != 2 {
		t.Fatalf("Details() returned %d entries, want 2", len(details))
	}
	if details["A"].SystemPrompt != "prompt-a" {
		t.Errorf("Details()[A].SystemPrompt = %q, want prompt-a", details["A"].SystemPrompt)
	}
	if details["B"].SystemPrompt != "prompt-b" {
		t.Errorf("Details()[B].SystemPrompt = %q, want prompt-b", details["B"].SystemPrompt)
	}
}

func TestMemoryRegistry_ConcurrentAccess(t *testing.T) {
	registry := newTestRegistry()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			name := string(rune('a' + n%10))
			registry.Attach(ctx, name, "p")
			registry.Get(ctx, name)
			registry.List(ctx)
			registry.Details(ctx)
			registry.Remove(ctx, name)
		}(i)
	}
	wg.Wait()
}
