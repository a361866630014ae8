package utils

import (
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("user-1", "wanjiru@example.com", "student", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}

	identity, err := ExtractIdentityFromToken(token)
	if err != nil {
		t.Fatalf("ExtractIdentityFromToken returned error: %v", err)
	}
	if identity.UserID != "user-1" {
		t.Errorf("userID = %q", identity.UserID)
	}
	if identity.Email != "wanjiru@example.com" {
		t.Errorf("email = %q", identity.Email)
	}
	if identity.Role != "student" {
		t.Errorf("role = %q", identity.Role)
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	token, err := GenerateToken("user-1", "a@b.c", "student", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}
	if _, err := ExtractIdentityFromToken(token); err == nil {
		t.Error("expired token passed validation")
	}
}

func TestGarbageTokenRejected(t *testing.T) {
	if _, err := ExtractIdentityFromToken("not.a.token"); err == nil {
		t.Error("malformed token passed validation")
	}
}

func TestHashTokenIsStable(t *testing.T) {
	a := HashToken("some-token")
	b := HashToken("some-token")
	if a != b {
		t.Error("hash is not deterministic")
	}
	if a == HashToken("other-token") {
		t.Error("distinct tokens hash equal")
	}
	if len(a) != 64 {
		t.Errorf("hash length = %d, want 64 hex chars", len(a))
	}
}
