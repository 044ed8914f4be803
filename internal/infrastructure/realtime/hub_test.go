package realtime

import "testing"

func TestAttachEvictsPreviousSession(t *testing.T) {
	h := NewHub()
	first := NewConnection("alice", nil)
	second := NewConnection("alice", nil)

	h.Attach(first)
	h.JoinRoom("alice_bob", first)
	h.Attach(second)

	if !first.Closed() {
		t.Fatal("superseded connection not closed")
	}
	if h.rooms.Size("alice_bob") != 0 {
		t.Fatal("superseded connection still in room")
	}
	if !h.IsOnline("alice") {
		t.Fatal("alice should remain online via the new session")
	}
}

func TestDetachReportsAuthority(t *testing.T) {
	h := NewHub()
	first := NewConnection("alice", nil)
	second := NewConnection("alice", nil)

	h.Attach(first)
	h.Attach(second)

	if _, ok := h.Detach(first); ok {
		t.Fatal("stale detach reported as authoritative")
	}
	userID, ok := h.Detach(second)
	if !ok || userID != "alice" {
		t.Fatalf("detach = (%q, %v)", userID, ok)
	}
	if h.IsOnline("alice") {
		t.Fatal("alice should be offline after authoritative detach")
	}
}

func TestDetachDropsRoomMembership(t *testing.T) {
	h := NewHub()
	conn := NewConnection("alice", nil)
	h.Attach(conn)
	h.JoinRoom("alice_bob", conn)

	h.Detach(conn)
	if h.rooms.Size("alice_bob") != 0 {
		t.Fatal("detached connection still joined")
	}
}
