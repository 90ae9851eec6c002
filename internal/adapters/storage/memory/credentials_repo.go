package memory

import (
	"context"
	"sync"

	"student-pet-records/internal/domain/credentials"
	"student-pet-records/internal/errs"
)

type credentialRepo struct {
	mu      sync.RWMutex
	byLogin map[string]string
}

func NewCredentialRepo() credentials.Repository {
	return &credentialRepo{
		byLogin: make(map[string]string),
	}
}

func (r *credentialRepo) Insert(ctx context.Context, c credentials.Credential) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byLogin[c.Login]; exists {
		return errs.New(errs.ErrConflict, "A User with this login already exists", nil)
	}
	r.byLogin[c.Login] = c.PasswordHash
	return nil
}

func (r *credentialRepo) Match(ctx context.Context, login, passwordHash string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	h, ok := r.byLogin[login]
	return ok && h == passwordHash, nil
}

func (r *credentialRepo) Exists(ctx context.Context, login string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.byLogin[login]
	return ok, nil
}
