package services

import (
	"time"

	"lacarreta/pkg/apperr"
	"lacarreta/utils"

	"golang.org/x/crypto/bcrypt"
)

// AuthService checks the single admin credential and issues tokens. The
// plaintext password is hashed once at construction and discarded; login
// always goes through bcrypt, never a string compare.
type AuthService struct {
	username     string
	passwordHash []byte
	jwtSecret    string
	jwtTTL       time.Duration
}

func NewAuthService(username, password, secret string, ttl time.Duration) (*AuthService, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &AuthService{
		username:     username,
		passwordHash: hash,
		jwtSecret:    secret,
		jwtTTL:       ttl,
	}, nil
}

// Login verifies the credential pair and returns a signed admin token.
// Both mismatch cases collapse to the same error so a caller cannot probe
// which field was wrong.
func (s *AuthService) Login(username, password string) (string, error) {
	if username != s.username {
		return "", apperr.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		return "", apperr.ErrUnauthorized
	}

	token, err := utils.GenerateToken(s.username, "admin", s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", err
	}
	return token, nil
}
