package auth

import (
	"errors"
	"testing"
)

func TestParseTokenExtractsUserID(t *testing.T) {
	identity, err := ParseToken("g1_token_alice")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if identity.UserID != "alice" {
		t.Fatalf("expected user id alice, got %s", identity.UserID)
	}
	if identity.Email != "alice@example.com" {
		t.Fatalf("unexpected email: %s", identity.Email)
	}
	if identity.Token != "g1_token_alice" {
		t.Fatalf("unexpected token: %s", identity.Token)
	}
}

func TestParseTokenBarePrefixFallsBack(t *testing.T) {
	identity, err := ParseToken("g1_token_")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if identity.UserID != "user123" {
		t.Fatalf("expected fallback user id, got %s", identity.UserID)
	}
}

func TestParseTokenTrimsWhitespace(t *testing.T) {
	identity, err := ParseToken("  g1_token_bob  ")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if identity.UserID != "bob" {
		t.Fatalf("expected user id bob, got %s", identity.UserID)
	}
}

func TestParseTokenRejectsInvalid(t *testing.T) {
	cases := []string{"", "token_abc", "g2_token_abc", "Bearer g1_token_abc"}
	for _, token := range cases {
		if _, err := ParseToken(token); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("token %q: expected ErrInvalidToken, got %v", token, err)
		}
	}
}
