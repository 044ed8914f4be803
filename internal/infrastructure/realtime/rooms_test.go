package realtime

import "testing"

// drain reads every payload currently queued on the connection.
func drain(c *Connection) [][]byte {
	var out [][]byte
	for {
		select {
		case msg := <-c.send:
			out = append(out, msg)
		default:
			return out
		}
	}
}

func TestBroadcastReachesAllMembers(t *testing.T) {
	r := NewRooms()
	a := NewConnection("alice", nil)
	b := NewConnection("bob", nil)
	r.Join("alice_bob", a)
	r.Join("alice_bob", b)

	payload := []byte(`{"type":"receiveMessage"}`)
	if got := r.Broadcast("alice_bob", payload); got != 2 {
		t.Fatalf("delivered = %d, want 2", got)
	}
	for _, conn := range []*Connection{a, b} {
		msgs := drain(conn)
		if len(msgs) != 1 || string(msgs[0]) != string(payload) {
			t.Fatalf("%s received %q", conn.UserID, msgs)
		}
	}
}

func TestBroadcastExceptSkipsOrigin(t *testing.T) {
	r := NewRooms()
	a := NewConnection("alice", nil)
	b := NewConnection("bob", nil)
	r.Join("alice_bob", a)
	r.Join("alice_bob", b)

	if got := r.BroadcastExcept("alice_bob", a, []byte("typing")); got != 1 {
		t.Fatalf("delivered = %d, want 1", got)
	}
	if msgs := drain(a); len(msgs) != 0 {
		t.Fatalf("origin received %q", msgs)
	}
	if msgs := drain(b); len(msgs) != 1 {
		t.Fatalf("peer received %d messages", len(msgs))
	}
}

func TestBroadcastToEmptyRoom(t *testing.T) {
	r := NewRooms()
	if got := r.Broadcast("nobody_here", []byte("x")); got != 0 {
		t.Fatalf("delivered = %d, want 0", got)
	}
}

func TestLeaveStopsDelivery(t *testing.T) {
	r := NewRooms()
	a := NewConnection("alice", nil)
	r.Join("alice_bob", a)
	r.Leave("alice_bob", a)

	if got := r.Broadcast("alice_bob", []byte("x")); got != 0 {
		t.Fatalf("delivered = %d after leave", got)
	}
}

func TestDropRemovesFromAllRooms(t *testing.T) {
	r := NewRooms()
	a := NewConnection("alice", nil)
	r.Join("alice_bob", a)
	r.Join("alice_carol", a)

	r.Drop(a)
	if r.Size("alice_bob") != 0 || r.Size("alice_carol") != 0 {
		t.Fatal("connection still present after drop")
	}
}

func TestJoinIsIdempotentPerConnection(t *testing.T) {
	r := NewRooms()
	a := NewConnection("alice", nil)
	r.Join("alice_bob", a)
	r.Join("alice_bob", a)

	if got := r.Broadcast("alice_bob", []byte("x")); got != 1 {
		t.Fatalf("delivered = %d, want 1", got)
	}
}
