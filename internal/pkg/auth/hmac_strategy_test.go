package auth

import (
	"testing"
	"time"
)

func TestHMACStrategyRoundTrip(t *testing.T) {
	s := NewHMACStrategy("secret", Options{})
	token, err := s.IssueToken(Claims{Subject: "09171234567", Role: RoleCustomer, Name: "Juan Dela Cruz"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims, err := s.ParseToken(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.Subject != "09171234567" || claims.Role != RoleCustomer || claims.Name != "Juan Dela Cruz" {
		t.Fatalf("unexpected claims %+v", claims)
	}
}

func TestHMACStrategyAdminToken(t *testing.T) {
	s := NewHMACStrategy("secret", Options{})
	token, err := s.IssueToken(Claims{Subject: "admin", Role: RoleAdmin, Name: "Admin"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	claims, err := s.ParseToken(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.Role != RoleAdmin {
		t.Fatalf("expected admin role, got %q", claims.Role)
	}
}

func TestHMACStrategyRejectsBadTokens(t *testing.T) {
	s := NewHMACStrategy("secret", Options{})

	if _, err := s.ParseToken("not-base64!!"); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}

	token, err := s.IssueToken(Claims{Subject: "09171234567", Role: RoleCustomer})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	other := NewHMACStrategy("different", Options{})
	if _, err := other.ParseToken(token); err != ErrInvalidToken {
		t.Fatalf("expected signature mismatch, got %v", err)
	}
}

func TestHMACStrategyRejectsExpired(t *testing.T) {
	s := NewHMACStrategy("secret", Options{TTL: -time.Minute})
	token, err := s.IssueToken(Claims{Subject: "09171234567", Role: RoleCustomer})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := s.ParseToken(token); err != ErrInvalidToken {
		t.Fatalf("expected expired token rejection, got %v", err)
	}
}

func TestHMACStrategyRejectsBadSubject(t *testing.T) {
	s := NewHMACStrategy("secret", Options{})
	if _, err := s.IssueToken(Claims{Subject: ""}); err == nil {
		t.Fatal("expected empty subject to be rejected")
	}
	if _, err := s.IssueToken(Claims{Subject: "a:b"}); err == nil {
		t.Fatal("expected subject with separator to be rejected")
	}
}

func TestBcryptHasher(t *testing.T) {
	h := NewBcryptHasher(4)
	hash, err := h.Hash("pass123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := h.Compare(hash, "pass123"); err != nil {
		t.Fatalf("expected password to match: %v", err)
	}
	if err := h.Compare(hash, "wrong"); err == nil {
		t.Fatal("expected mismatch error")
	}
}
