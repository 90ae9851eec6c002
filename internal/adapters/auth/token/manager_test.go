package token

import (
	"context"
	"errors"
	"testing"
	"time"

	"student-pet-records/internal/ports/auth"
)

const testSecret = "0123456789abcdef0123"

func TestManager_IssueThenVerify(t *testing.T) {
	ctx := context.Background()
	m := NewManager(testSecret, "records", time.Hour)
	m.now = func() time.Time { return time.Now().Truncate(time.Second) }

	tok, err := m.Issue(ctx, "admin")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if tok.Value == "" {
		t.Fatalf("expected signed token")
	}

	claims, err := m.Verify(ctx, tok.Value)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.Login != "admin" {
		t.Fatalf("expected login admin, got %q", claims.Login)
	}
	if claims.TokenID == "" {
		t.Fatalf("expected jti")
	}
	if !claims.ExpiresAt.Equal(tok.ExpiresAt) {
		t.Fatalf("expiry mismatch: %v vs %v", claims.ExpiresAt, tok.ExpiresAt)
	}
}

func TestManager_RejectsExpired(t *testing.T) {
	ctx := context.Background()
	issuedAt := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	m := NewManager(testSecret, "records", time.Minute)
	m.now = func() time.Time { return issuedAt }
	tok, err := m.Issue(ctx, "admin")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	m.now = func() time.Time { return issuedAt.Add(2 * time.Minute) }
	if _, err := m.Verify(ctx, tok.Value); !errors.Is(err, auth.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestManager_RejectsOtherSecretAndIssuer(t *testing.T) {
	ctx := context.Background()
	tok, err := NewManager(testSecret, "records", time.Hour).Issue(ctx, "admin")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := NewManager("another-secret-value-123", "records", time.Hour).Verify(ctx, tok.Value); !errors.Is(err, auth.ErrInvalidToken) {
		t.Fatalf("expected signature failure, got %v", err)
	}
	if _, err := NewManager(testSecret, "someone-else", time.Hour).Verify(ctx, tok.Value); !errors.Is(err, auth.ErrInvalidToken) {
		t.Fatalf("expected issuer failure, got %v", err)
	}
}

func TestManager_EmptyInputs(t *testing.T) {
	ctx := context.Background()
	m := NewManager(testSecret, "records", time.Hour)

	if _, err := m.Issue(ctx, "  "); !errors.Is(err, ErrMissingSubject) {
		t.Fatalf("expected ErrMissingSubject, got %v", err)
	}
	if _, err := m.Verify(ctx, ""); !errors.Is(err, ErrTokenEmpty) {
		t.Fatalf("expected ErrTokenEmpty, got %v", err)
	}

	var nilManager *Manager
	if _, err := nilManager.Verify(ctx, "x"); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}
