package auth

import (
	"errors"
	"testing"
)

func TestTrustModeAcceptsClaimedIdentity(t *testing.T) {
	v := &Verifier{}

	got, err := v.Identify("alice", "")
	if err != nil || got != "alice" {
		t.Fatalf("identify = (%q, %v)", got, err)
	}
	if v.Enforced() {
		t.Fatal("verifier without secret should not enforce")
	}
}

func TestTrustModeStillRequiresIdentity(t *testing.T) {
	v := &Verifier{}
	if _, err := v.Identify("", ""); !errors.Is(err, ErrMissingIdentity) {
		t.Fatalf("got %v, want ErrMissingIdentity", err)
	}
}

func TestEnforcedAcceptsValidToken(t *testing.T) {
	v := &Verifier{secret: []byte("test-secret")}

	token, err := v.Sign("alice")
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	got, err := v.Identify("alice", token)
	if err != nil || got != "alice" {
		t.Fatalf("identify = (%q, %v)", got, err)
	}
}

func TestEnforcedRejectsMissingToken(t *testing.T) {
	v := &Verifier{secret: []byte("test-secret")}
	if _, err := v.Identify("alice", ""); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("got %v, want ErrInvalidToken", err)
	}
}

func TestEnforcedRejectsIdentityMismatch(t *testing.T) {
	v := &Verifier{secret: []byte("test-secret")}

	token, err := v.Sign("mallory")
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := v.Identify("alice", token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("got %v, want ErrInvalidToken", err)
	}
}

func TestEnforcedRejectsForeignSignature(t *testing.T) {
	issuer := &Verifier{secret: []byte("other-secret")}
	v := &Verifier{secret: []byte("test-secret")}

	token, err := issuer.Sign("alice")
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := v.Identify("alice", token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("got %v, want ErrInvalidToken", err)
	}
}
