package mockapi

import (
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := generateToken("secret", "a@b.c", "user-1", time.Hour)
	if err != nil {
		t.Fatalf("generateToken() error = %v", err)
	}

	c, err := parseToken("secret", token)
	if err != nil {
		t.Fatalf("parseToken() error = %v", err)
	}
	if c.Email != "a@b.c" {
		t.Errorf("email = %q, want a@b.c", c.Email)
	}
	if c.UserID != "user-1" {
		t.Errorf("user id = %q, want user-1", c.UserID)
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, err := generateToken("secret", "a@b.c", "user-1", time.Hour)
	if err != nil {
		t.Fatalf("generateToken() error = %v", err)
	}
	if _, err := parseToken("other-secret", token); err == nil {
		t.Error("parseToken() with wrong secret error = nil, want error")
	}
}

func TestParseToken_Expired(t *testing.T) {
	token, err := generateToken("secret", "a@b.c", "user-1", -time.Minute)
	if err != nil {
		t.Fatalf("generateToken() error = %v", err)
	}
	if _, err := parseToken("secret", token); err == nil {
		t.Error("parseToken() of an expired token error = nil, want error")
	}
}

func TestParseToken_Garbage(t *testing.T) {
	if _, err := parseToken("secret", "not.a.jwt"); err == nil {
		t.Error("parseToken(garbage) error = nil, want error")
	}
}
