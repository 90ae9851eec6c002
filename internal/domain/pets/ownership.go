package pets

import (
	"context"
	"strings"

	"student-pet-records/internal/errs"
)

var ErrOwnerNotFound = errs.New(errs.ErrInvalidInput, "owner student not found", nil)

// OwnerDirectory responde si existe el alumno dueño.
// Lo implementa students.Service; se define acá para evitar ciclos de imports.
type OwnerDirectory interface {
	Exists(ctx context.Context, studentID string) (bool, error)
}

func (s *Service) checkOwner(ctx context.Context, ownerID string) error {
	if strings.TrimSpace(ownerID) == "" {
		return errs.Invalid("owner is required", []errs.FieldError{{Field: "owner_id", Error: "is required"}})
	}
	if s.owners == nil {
		return nil
	}
	ok, err := s.owners.Exists(ctx, ownerID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrOwnerNotFound
	}
	return nil
}
