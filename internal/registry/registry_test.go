package registry_test

import (
	"testing"

	"pairchat/internal/domain"
	"pairchat/internal/registry"
)

func TestCreate_DuplicateCode(t *testing.T) {
	r := registry.New()

	if err := r.Create("code-1", "alice"); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := r.Create("code-1", "bob"); err == nil {
		t.Fatal("expected error for duplicate code")
	}

	creator, ok := r.Creator("code-1")
	if !ok || creator != "alice" {
		t.Fatalf("creator = %q, %v; want alice, true", creator, ok)
	}
}

func TestSubscribe_MissingRoom(t *testing.T) {
	r := registry.New()

	if _, ok := r.Subscribe("nope", func(domain.Payload) {}); ok {
		t.Fatal("subscribe to missing room should fail")
	}
}

func TestUnsubscribe_LastSubscriberDeletesRoom(t *testing.T) {
	r := registry.New()
	if err := r.Create("code-1", "alice"); err != nil {
		t.Fatalf("create: %v", err)
	}

	sub, ok := r.Subscribe("code-1", func(domain.Payload) {})
	if !ok {
		t.Fatal("subscribe failed")
	}
	if r.Open() != 1 {
		t.Fatalf("open rooms = %d, want 1", r.Open())
	}

	r.Unsubscribe(sub)
	if r.Open() != 0 {
		t.Fatalf("open rooms after last unsubscribe = %d, want 0", r.Open())
	}

	// Removing an already-removed handle must stay a no-op.
	r.Unsubscribe(sub)
}

func TestBroadcast_ExcludesSender(t *testing.T) {
	r := registry.New()
	if err := r.Create("code-1", "alice"); err != nil {
		t.Fatalf("create: %v", err)
	}

	var senderGot, peerGot []domain.Payload
	senderSub, _ := r.Subscribe("code-1", func(p domain.Payload) { senderGot = append(senderGot, p) })
	if _, ok := r.Subscribe("code-1", func(p domain.Payload) { peerGot = append(peerGot, p) }); !ok {
		t.Fatal("peer subscribe failed")
	}

	n := r.Broadcast("code-1", senderSub, domain.Payload{Content: "hi", Type: domain.TextMessage})
	if n != 1 {
		t.Fatalf("delivery count = %d, want 1", n)
	}
	if len(senderGot) != 0 {
		t.Fatalf("sender received its own broadcast: %v", senderGot)
	}
	if len(peerGot) != 1 || peerGot[0].Content != "hi" || peerGot[0].Type != domain.TextMessage {
		t.Fatalf("peer got %v, want one text payload %q", peerGot, "hi")
	}
}

func TestBroadcast_MissingRoomDropped(t *testing.T) {
	r := registry.New()

	n := r.Broadcast("gone", registry.Subscription{}, domain.Payload{Content: "x", Type: domain.TextMessage})
	if n != 0 {
		t.Fatalf("delivery count = %d, want 0", n)
	}
}

func TestDelete_Defensive(t *testing.T) {
	r := registry.New()

	r.Delete("never-existed")

	if err := r.Create("code-1", "alice"); err != nil {
		t.Fatalf("create: %v", err)
	}
	r.Delete("code-1")
	r.Delete("code-1")
	if r.Open() != 0 {
		t.Fatalf("open rooms = %d, want 0", r.Open())
	}
}
