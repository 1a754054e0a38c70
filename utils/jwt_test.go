package utils

import (
	"errors"
	"testing"
	"time"

	"lacarreta/pkg/apperr"
)

const testSecret = "test-secret"

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("admin", "admin", testSecret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if token == "" {
		t.Fatal("empty token")
	}

	claims, err := ParseToken(token, testSecret)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.Username != "admin" || claims.Role != "admin" {
		t.Errorf("claims = %q/%q, want admin/admin", claims.Username, claims.Role)
	}
}

func TestParseTokenRejects(t *testing.T) {
	valid, err := GenerateToken("admin", "admin", testSecret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	expired, err := GenerateToken("admin", "admin", testSecret, -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	tests := []struct {
		name   string
		token  string
		secret string
	}{
		{"wrong key", valid, "other-secret"},
		{"malformed", "not.a.token", testSecret},
		{"empty", "", testSecret},
		{"expired", expired, testSecret},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseToken(tt.token, tt.secret); !errors.Is(err, apperr.ErrUnauthorized) {
				t.Errorf("ParseToken error = %v, want ErrUnauthorized", err)
			}
		})
	}
}
