package usecase

import (
	"crypto/rand"
	"encoding/hex"
	"sync"

	"slot-booking-api/internal/pkg/config"
	"slot-booking-api/internal/pkg/errs"
	"slot-booking-api/internal/pkg/password"
)

var (
	ErrInvalidCredentials = errs.New("invalid password")
	ErrTokenGeneration    = errs.New("token generation failed")
)

const sessionTokenBytes = 32

// SessionRegistry authenticates the single operator role and authorizes
// subsequent requests. Tokens live for the process lifetime only: a restart
// invalidates every session, which is accepted behavior.
type SessionRegistry interface {
	Login(pw string) (string, error)
	Logout(token string)
	Authorize(token string) bool
}

type sessionRegistryImpl struct {
	passwordHash string

	mu     sync.RWMutex
	tokens map[string]struct{}
}

// NewSessionRegistry hashes the configured secret once at startup so the
// plaintext password is not kept around for the life of the process.
func NewSessionRegistry(cfg config.Config) (SessionRegistry, error) {
	hash, err := password.HashPassword(cfg.Admin.Password)
	if err != nil {
		return nil, errs.Wrap(err, "failed to hash admin password")
	}

	return &sessionRegistryImpl{
		passwordHash: hash,
		tokens:       make(map[string]struct{}),
	}, nil
}

func (s *sessionRegistryImpl) Login(pw string) (string, error) {
	if err := password.ComparePassword(s.passwordHash, pw); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := mintToken()
	if err != nil {
		return "", errs.Mark(err, ErrTokenGeneration)
	}

	s.mu.Lock()
	s.tokens[token] = struct{}{}
	s.mu.Unlock()

	return token, nil
}

// Logout is idempotent: removing an unknown token is not an error.
func (s *sessionRegistryImpl) Logout(token string) {
	s.mu.Lock()
	delete(s.tokens, token)
	s.mu.Unlock()
}

// Authorize makes no distinction between malformed, expired, or unknown
// tokens; anything not in the active set is simply not authorized.
func (s *sessionRegistryImpl) Authorize(token string) bool {
	if token == "" {
		return false
	}

	s.mu.RLock()
	_, ok := s.tokens[token]
	s.mu.RUnlock()
	return ok
}

func mintToken() (string, error) {
	buf := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
