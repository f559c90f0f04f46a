// Copyright (c) 2025 MemeLord Project
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package auth implements the login gate in front of the chat surface.
//
// Credentials are verified against a bcrypt hash from configuration, never
// against plaintext. Attempts are rate limited so the gate cannot be brute
// forced by holding down Enter.
package auth

import (
	"crypto/subtle"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/time/rate"

	"github.com/memelord/memelord-tui/internal/config"
)

// =============================================================================
// ERRORS
// =============================================================================

var (
	// ErrInvalidCredentials is returned for any identifier/secret mismatch.
	// Deliberately indistinct: the caller cannot learn which field was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrRateLimited is returned when attempts arrive faster than the
	// configured budget allows.
	ErrRateLimited = errors.New("too many login attempts, slow down")
)

// =============================================================================
// SESSION
// =============================================================================

// Session records one successful login.
type Session struct {
	// ID is a unique identifier for this login session.
	ID string

	// Identifier is the identity that logged in.
	Identifier string

	// StartedAt is when the login succeeded.
	StartedAt time.Time
}

// =============================================================================
// GATE
// =============================================================================

// Gate verifies login attempts. Safe for use from a single goroutine; the
// UI event loop is the only caller.
type Gate struct {
	identifier string
	secretHash []byte
	limiter    *rate.Limiter
	enabled    bool
}

// NewGate builds a gate from configuration. A gate with no secret hash is
// disabled and admits everyone; that is the out-of-the-box experience
// before credentials are provisioned.
func NewGate(cfg config.AuthConfig) *Gate {
	perMinute := cfg.MaxAttemptsPerMinute
	if perMinute <= 0 {
		perMinute = 6
	}
	return &Gate{
		identifier: cfg.Identifier,
		secretHash: []byte(cfg.SecretHash),
		limiter:    rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), perMinute),
		enabled:    cfg.SecretHash != "",
	}
}

// Enabled reports whether the gate requires a login at all.
func (g *Gate) Enabled() bool {
	return g.enabled
}

// Attempt verifies one identifier/secret pair. On success it returns a
// fresh session. Rate limiting is checked before any credential work so a
// flood never reaches bcrypt.
func (g *Gate) Attempt(identifier, secret string) (*Session, error) {
	if !g.enabled {
		return newSession(identifier), nil
	}
	if !g.limiter.Allow() {
		return nil, ErrRateLimited
	}

	// Evaluate both checks unconditionally so a wrong identifier costs the
	// same as a wrong secret.
	idOK := subtle.ConstantTimeCompare([]byte(identifier), []byte(g.identifier)) == 1
	secretErr := bcrypt.CompareHashAndPassword(g.secretHash, []byte(secret))
	if !idOK || secretErr != nil {
		return nil, ErrInvalidCredentials
	}
	return newSession(identifier), nil
}

func newSession(identifier string) *Session {
	return &Session{
		ID:         "login_" + uuid.NewString(),
		Identifier: identifier,
		StartedAt:  time.Now(),
	}
}

// =============================================================================
// PROVISIONING
// =============================================================================

// HashSecret produces a bcrypt hash suitable for the secret_hash config
// field. Intended for the -hash-secret provisioning flag.
func HashSecret(secret string) (string, error) {
	if secret == "" {
		return "", errors.New("secret must not be empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
