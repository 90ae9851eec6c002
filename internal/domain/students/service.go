package students

import (
	"context"
	"strings"

	"student-pet-records/internal/errs"
	"student-pet-records/internal/platform/logger"
)

type Service struct {
	repo Repository
	log  logger.Logger
}

func NewService(repo Repository, log logger.Logger) *Service {
	return &Service{
		repo: repo,
		log:  logger.OrNop(log).With(map[string]any{"module": "students"}),
	}
}

func (s *Service) List(ctx context.Context) ([]Student, error) {
	out, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error("students.list", map[string]any{"err": err})
		return nil, err
	}
	s.log.Debug("students.list", map[string]any{"count": len(out)})
	return out, nil
}

func (s *Service) Get(ctx context.Context, id string) (Student, bool, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Student{}, false, nil
	}

	st, found, err := s.repo.Get(ctx, id)
	if err != nil {
		s.log.Error("students.get", map[string]any{"id": id, "err": err})
		return Student{}, false, err
	}
	s.log.Debug("students.get", map[string]any{"id": id, "found": found})
	return st, found, nil
}

// Exists permite a pets validar el dueño sin importar este paquete.
func (s *Service) Exists(ctx context.Context, id string) (bool, error) {
	_, found, err := s.Get(ctx, id)
	return found, err
}

// Save decide insert o update según key:
//   - key != "": actualiza el alumno con ese ID (st.ID se ignora, el ID no cambia).
//     Si no existe, no hace nada.
//   - key == "": inserta usando st.ID, que es obligatorio.
func (s *Service) Save(ctx context.Context, key string, st Student) (Student, error) {
	st.Name = strings.TrimSpace(st.Name)
	st.DocumentNumber = strings.TrimSpace(st.DocumentNumber)
	st.Course = strings.TrimSpace(st.Course)
	st.Sex = Sex(strings.ToUpper(strings.TrimSpace(string(st.Sex))))

	if err := validate(st); err != nil {
		return Student{}, err
	}

	if key = strings.TrimSpace(key); key != "" {
		st.ID = key
		if err := s.repo.Update(ctx, st); err != nil {
			s.log.Error("students.update", map[string]any{"id": key, "err": err})
			return Student{}, err
		}
		s.log.Info("students.update", map[string]any{"id": key})
		return st, nil
	}

	st.ID = strings.TrimSpace(st.ID)
	if st.ID == "" {
		return Student{}, errs.Invalid("registration number is required", []errs.FieldError{
			{Field: "id", Error: "is required"},
		})
	}
	if err := s.repo.Insert(ctx, st); err != nil {
		s.log.Warn("students.insert", map[string]any{"id": st.ID, "err": err})
		return Student{}, err
	}
	s.log.Info("students.insert", map[string]any{"id": st.ID})
	return st, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		s.log.Error("students.delete", map[string]any{"id": id, "err": err})
		return err
	}
	s.log.Info("students.delete", map[string]any{"id": id})
	return nil
}

func (s *Service) Count(ctx context.Context) (int, error) {
	n, err := s.repo.Count(ctx)
	if err != nil {
		s.log.Error("students.count", map[string]any{"err": err})
		return 0, err
	}
	return n, nil
}

func (s *Service) Ages(ctx context.Context) ([]*int, error) {
	ages, err := s.repo.Ages(ctx)
	if err != nil {
		s.log.Error("students.ages", map[string]any{"err": err})
		return nil, err
	}
	return ages, nil
}

func validate(st Student) error {
	var fields []errs.FieldError
	if st.Age < 0 {
		fields = append(fields, errs.FieldError{Field: "age", Error: "must be at least 0"})
	}
	if !st.Sex.Valid() {
		fields = append(fields, errs.FieldError{Field: "sex", Error: "must be one of: M F"})
	}
	if len(fields) > 0 {
		return errs.Invalid("invalid student", fields)
	}
	return nil
}
