package chat

import "testing"

func TestChatboxIDSymmetric(t *testing.T) {
	a := ChatboxID("user42", "user7")
	b := ChatboxID("user7", "user42")
	if a != b {
		t.Fatalf("key not symmetric: %q vs %q", a, b)
	}
	if a != "user42_user7" {
		t.Fatalf("unexpected key: %q", a)
	}
}

func TestChatboxIDLexicographicOrder(t *testing.T) {
	if got := ChatboxID("zeta", "alpha"); got != "alpha_zeta" {
		t.Fatalf("got %q, want alpha_zeta", got)
	}
}

func TestOtherParticipant(t *testing.T) {
	box := Chatbox{ChatboxID: "a_b", SenderID: "a", ReceiverID: "b"}
	if got := box.OtherParticipant("a"); got != "b" {
		t.Fatalf("got %q, want b", got)
	}
	if got := box.OtherParticipant("b"); got != "a" {
		t.Fatalf("got %q, want a", got)
	}
}
