// Package token emite y verifica los tokens de sesión (JWT HS256) que se
// entregan después de un login aceptado por credentials.Service.
package token

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"student-pet-records/internal/ports/auth"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrTokenEmpty     = errors.New("token is empty")
	ErrNotConfigured  = errors.New("token manager not configured")
	ErrMissingSubject = errors.New("token claims missing subject")
)

type sessionClaims struct {
	jwt.RegisteredClaims
}

// Manager implementa auth.TokenIssuer y auth.AuthVerifier.
type Manager struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

func NewManager(secret, issuer string, ttl time.Duration) *Manager {
	return &Manager{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
		now:    time.Now,
	}
}

func (m *Manager) Issue(ctx context.Context, login string) (auth.Token, error) {
	if m == nil || len(m.secret) == 0 {
		return auth.Token{}, ErrNotConfigured
	}
	if strings.TrimSpace(login) == "" {
		return auth.Token{}, ErrMissingSubject
	}

	now := m.now().UTC()
	exp := now.Add(m.ttl)
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   login,
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return auth.Token{}, fmt.Errorf("sign token: %w", err)
	}
	// NumericDate trunca a segundos; devolvemos lo mismo que lleva el token.
	return auth.Token{Value: signed, ExpiresAt: claims.ExpiresAt.Time}, nil
}

func (m *Manager) Verify(ctx context.Context, raw string) (auth.Claims, error) {
	if m == nil || len(m.secret) == 0 {
		return auth.Claims{}, ErrNotConfigured
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return auth.Claims{}, ErrTokenEmpty
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	}
	if m.issuer != "" {
		opts = append(opts, jwt.WithIssuer(m.issuer))
	}

	parsed, err := jwt.ParseWithClaims(raw, &sessionClaims{}, func(*jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, opts...)
	if err != nil {
		return auth.Claims{}, fmt.Errorf("%w: %v", auth.ErrInvalidToken, err)
	}

	c, ok := parsed.Claims.(*sessionClaims)
	if !ok || !parsed.Valid {
		return auth.Claims{}, auth.ErrInvalidToken
	}
	if strings.TrimSpace(c.Subject) == "" {
		return auth.Claims{}, ErrMissingSubject
	}

	out := auth.Claims{Login: c.Subject, TokenID: c.ID}
	if c.ExpiresAt != nil {
		out.ExpiresAt = c.ExpiresAt.Time
	}
	return out, nil
}
