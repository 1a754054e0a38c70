package services

import (
	"errors"
	"testing"
	"time"

	"lacarreta/pkg/apperr"
	"lacarreta/utils"
)

func newTestAuth(t *testing.T) *AuthService {
	t.Helper()
	svc, err := NewAuthService("admin", "lacarreta2024", "test-secret", time.Hour)
	if err != nil {
		t.Fatalf("NewAuthService: %v", err)
	}
	return svc
}

func TestLoginIssuesAdminToken(t *testing.T) {
	svc := newTestAuth(t)

	token, err := svc.Login("admin", "lacarreta2024")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	claims, err := utils.ParseToken(token, "test-secret")
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.Username != "admin" || claims.Role != "admin" {
		t.Errorf("claims = %q/%q, want admin/admin", claims.Username, claims.Role)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := newTestAuth(t)

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"wrong password", "admin", "wrong"},
		{"wrong username", "root", "lacarreta2024"},
		{"case sensitive password", "admin", "Lacarreta2024"},
		{"empty password", "admin", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := svc.Login(tt.username, tt.password)
			if !errors.Is(err, apperr.ErrUnauthorized) {
				t.Errorf("Login error = %v, want ErrUnauthorized", err)
			}
			if token != "" {
				t.Errorf("Login returned a token on failure")
			}
		})
	}
}
