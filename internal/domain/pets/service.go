package pets

import (
	"context"
	"strings"
	"time"

	"student-pet-records/internal/errs"
	"student-pet-records/internal/platform/logger"
)

type Service struct {
	repo   Repository
	owners OwnerDirectory
	log    logger.Logger
	now    func() time.Time
}

// NewService recibe el directorio de dueños; con owners == nil no se valida
// la existencia del alumno.
func NewService(repo Repository, owners OwnerDirectory, log logger.Logger) *Service {
	return &Service{
		repo:   repo,
		owners: owners,
		log:    logger.OrNop(log).With(map[string]any{"module": "pets"}),
		now:    time.Now,
	}
}

func (s *Service) List(ctx context.Context) ([]Pet, error) {
	out, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error("pets.list", map[string]any{"err": err})
		return nil, err
	}
	s.log.Debug("pets.list", map[string]any{"count": len(out)})
	return out, nil
}

// ListByOwner es la vista maestro/detalle: las mascotas de un alumno.
func (s *Service) ListByOwner(ctx context.Context, ownerID string) ([]Pet, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return []Pet{}, nil
	}
	out, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		s.log.Error("pets.list_by_owner", map[string]any{"owner_id": ownerID, "err": err})
		return nil, err
	}
	return out, nil
}

func (s *Service) Get(ctx context.Context, id int64) (Pet, bool, error) {
	if id <= 0 {
		return Pet{}, false, nil
	}
	p, found, err := s.repo.Get(ctx, id)
	if err != nil {
		s.log.Error("pets.get", map[string]any{"id": id, "err": err})
		return Pet{}, false, err
	}
	return p, found, nil
}

// Save inserta cuando p.ID == 0 (devuelve el ID generado) y actualiza en otro caso.
// Actualizar un ID inexistente no hace nada.
func (s *Service) Save(ctx context.Context, p Pet) (Pet, error) {
	p.Nickname = strings.TrimSpace(p.Nickname)
	p.Breed = strings.TrimSpace(p.Breed)
	p.OwnerID = strings.TrimSpace(p.OwnerID)

	if p.ID < 0 {
		return Pet{}, errs.Invalid("invalid pet id", []errs.FieldError{{Field: "id", Error: "must be at least 0"}})
	}
	if p.BirthDate != nil {
		d := truncateDate(*p.BirthDate)
		if d.After(s.now()) {
			return Pet{}, errs.Invalid("birth date is in the future", []errs.FieldError{{Field: "birth_date", Error: "must not be in the future"}})
		}
		p.BirthDate = &d
	}
	if err := s.checkOwner(ctx, p.OwnerID); err != nil {
		s.log.Warn("pets.save", map[string]any{"id": p.ID, "owner_id": p.OwnerID, "err": err})
		return Pet{}, err
	}

	if p.ID != 0 {
		if err := s.repo.Update(ctx, p); err != nil {
			s.log.Error("pets.update", map[string]any{"id": p.ID, "err": err})
			return Pet{}, err
		}
		s.log.Info("pets.update", map[string]any{"id": p.ID, "owner_id": p.OwnerID})
		return p, nil
	}

	id, err := s.repo.Insert(ctx, p)
	if err != nil {
		s.log.Error("pets.insert", map[string]any{"owner_id": p.OwnerID, "err": err})
		return Pet{}, err
	}
	p.ID = id
	s.log.Info("pets.insert", map[string]any{"id": p.ID, "owner_id": p.OwnerID})
	return p, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return nil
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		s.log.Error("pets.delete", map[string]any{"id": id, "err": err})
		return err
	}
	s.log.Info("pets.delete", map[string]any{"id": id})
	return nil
}

// birth_date es DATE: nos quedamos con año/mes/día en UTC.
func truncateDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
