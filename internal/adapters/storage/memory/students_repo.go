package memory

import (
	"context"
	"sort"
	"sync"

	"student-pet-records/internal/domain/students"
	"student-pet-records/internal/errs"
)

type studentRepo struct {
	mu   sync.RWMutex
	byID map[string]students.Student
}

func NewStudentRepo() students.Repository {
	return &studentRepo{
		byID: make(map[string]students.Student),
	}
}

func (r *studentRepo) Insert(ctx context.Context, s students.Student) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[s.ID]; exists {
		return errs.New(errs.ErrConflict, "A Student with this identifier already exists", nil)
	}
	s.Photo = cloneBytes(s.Photo)
	r.byID[s.ID] = s
	return nil
}

func (r *studentRepo) Update(ctx context.Context, s students.Student) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[s.ID]; !exists {
		return nil
	}
	s.Photo = cloneBytes(s.Photo)
	r.byID[s.ID] = s
	return nil
}

func (r *studentRepo) Get(ctx context.Context, id string) (students.Student, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.byID[id]
	if !ok {
		return students.Student{}, false, nil
	}
	s.Photo = cloneBytes(s.Photo)
	return s, true, nil
}

func (r *studentRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.byID, id)
	return nil
}

func (r *studentRepo) List(ctx context.Context) ([]students.Student, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]students.Student, 0, len(r.byID))
	for _, s := range r.byID {
		s.Photo = nil
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *studentRepo) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.byID), nil
}

// Ages: en memoria la edad nunca es NULL.
func (r *studentRepo) Ages(ctx context.Context) ([]*int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*int, 0, len(r.byID))
	for _, s := range r.byID {
		age := s.Age
		out = append(out, &age)
	}
	return out, nil
}
