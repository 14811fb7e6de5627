package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestTokenRoundTrip(t *testing.T) {
	id := uuid.New()

	tok, err := GenerateToken(id, "agent@example.com", "secret", time.Hour)
	if err != nil {
		t.Fatal(err)
	}

	claims, err := ParseToken(tok, "secret")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != id || claims.Email != "agent@example.com" {
		t.Errorf("claims = %+v", claims)
	}
}

func TestParseTokenRejects(t *testing.T) {
	id := uuid.New()
	expired, _ := GenerateToken(id, "a@b.co", "secret", -time.Minute)
	valid, _ := GenerateToken(id, "a@b.co", "secret", time.Hour)

	tests := map[string]struct{ token, secret string }{
		"expired":      {expired, "secret"},
		"wrong secret": {valid, "other"},
		"garbage":      {"not.a.token", "secret"},
	}
	for name, tt := range tests {
		if _, err := ParseToken(tt.token, tt.secret); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}
