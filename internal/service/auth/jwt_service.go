// Package auth provides token issuance and credential verification for the
// operator account.
package auth

import (
	"context"
	"time"
)

// Claims holds the validated claims extracted from an access token.
type Claims struct {
	// Subject is the authenticated principal (the operator username).
	Subject string

	// ExpiresAt is when the token stops being valid.
	ExpiresAt time.Time
}

// JWTService defines the interface for generating and validating access tokens.
type JWTService interface {
	// GenerateToken creates a signed access token for the given subject.
	GenerateToken(ctx context.Context, subject string) (string, time.Time, error)

	// ValidateToken parses and validates an access token, returning its
	// claims. Returns ErrExpiredToken or ErrInvalidToken on failure.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}
