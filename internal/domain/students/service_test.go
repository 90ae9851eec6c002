package students

import (
	"context"
	"errors"
	"sort"
	"testing"

	"student-pet-records/internal/errs"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byID  map[string]Student
	nulls int
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Student{}}
}

func (r *testRepo) List(ctx context.Context) ([]Student, error) {
	out := make([]Student, 0, len(r.byID))
	for _, s := range r.byID {
		s.Photo = nil
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *testRepo) Get(ctx context.Context, id string) (Student, bool, error) {
	s, ok := r.byID[id]
	return s, ok, nil
}

func (r *testRepo) Insert(ctx context.Context, s Student) error {
	if _, ok := r.byID[s.ID]; ok {
		return errs.New(errs.ErrConflict, "A Student with this identifier already exists", nil)
	}
	r.byID[s.ID] = s
	return nil
}

func (r *testRepo) Update(ctx context.Context, s Student) error {
	if _, ok := r.byID[s.ID]; ok {
		r.byID[s.ID] = s
	}
	return nil
}

func (r *testRepo) Delete(ctx context.Context, id string) error {
	delete(r.byID, id)
	return nil
}

func (r *testRepo) Count(ctx context.Context) (int, error) {
	return len(r.byID), nil
}

func (r *testRepo) Ages(ctx context.Context) ([]*int, error) {
	out := make([]*int, 0, len(r.byID)+r.nulls)
	for _, s := range r.byID {
		age := s.Age
		out = append(out, &age)
	}
	for i := 0; i < r.nulls; i++ {
		out = append(out, nil)
	}
	return out, nil
}

func newStudent(id string) Student {
	return Student{ID: id, Name: "Ana", Course: "ADS", Age: 20, Sex: SexFemale}
}

// -------------------------
// Tests
// -------------------------

func TestSave_InsertThenGet(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newTestRepo(), nil)

	in := newStudent("2024001")
	in.Photo = []byte{0xff, 0xd8, 0xff}
	in.Sex = "f"

	saved, err := svc.Save(ctx, "", in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved.Sex != SexFemale {
		t.Fatalf("expected sex normalized to F, got %q", saved.Sex)
	}

	got, found, err := svc.Get(ctx, "2024001")
	if err != nil || !found {
		t.Fatalf("expected student, found=%v err=%v", found, err)
	}
	if got.Name != "Ana" || got.Course != "ADS" || got.Age != 20 || string(got.Photo) != string(in.Photo) {
		t.Fatalf("unexpected student %+v", got)
	}
}

func TestSave_DuplicateInsertIsConflict(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newTestRepo(), nil)

	if _, err := svc.Save(ctx, "", newStudent("1")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err := svc.Save(ctx, "", newStudent("1"))
	if !errors.Is(err, errs.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestSave_InsertRequiresID(t *testing.T) {
	svc := NewService(newTestRepo(), nil)

	_, err := svc.Save(context.Background(), "", newStudent("  "))
	if !errors.Is(err, errs.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestSave_UpdateKeepsIDAndReplacesFields(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo()
	svc := NewService(repo, nil)

	if _, err := svc.Save(ctx, "", newStudent("1")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	upd := Student{ID: "999", Name: "Ana Maria", Course: "SI", Age: 21, Sex: SexFemale, Photo: []byte("p")}
	out, err := svc.Save(ctx, "1", upd)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.ID != "1" {
		t.Fatalf("expected id to stay 1, got %q", out.ID)
	}
	if _, ok := repo.byID["999"]; ok {
		t.Fatalf("update must not create a new id")
	}

	got, _, _ := svc.Get(ctx, "1")
	if got.Name != "Ana Maria" || got.Course != "SI" || got.Age != 21 || string(got.Photo) != "p" {
		t.Fatalf("fields not replaced: %+v", got)
	}
	// foto y sexo no se cruzan
	if got.Sex != SexFemale {
		t.Fatalf("expected sex F, got %q", got.Sex)
	}
}

func TestSave_UpdateMissingIsSilent(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newTestRepo(), nil)

	if _, err := svc.Save(ctx, "ghost", newStudent("")); err != nil {
		t.Fatalf("expected silent no-op, got %v", err)
	}
	if n, _ := svc.Count(ctx); n != 0 {
		t.Fatalf("expected no rows, got %d", n)
	}
}

func TestSave_RejectsInvalidFields(t *testing.T) {
	svc := NewService(newTestRepo(), nil)

	st := newStudent("1")
	st.Age = -1
	st.Sex = "X"

	_, err := svc.Save(context.Background(), "", st)
	if !errors.Is(err, errs.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if len(errs.FieldsOf(err)) != 2 {
		t.Fatalf("expected age and sex errors, got %#v", errs.FieldsOf(err))
	}
}

func TestDeleteCountAndList(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newTestRepo(), nil)

	for _, id := range []string{"3", "1", "2"} {
		st := newStudent(id)
		st.Photo = []byte("x")
		if _, err := svc.Save(ctx, "", st); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	list, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 3 || list[0].ID != "1" || list[2].ID != "3" {
		t.Fatalf("unexpected order: %+v", list)
	}
	for _, s := range list {
		if s.Photo != nil {
			t.Fatalf("list must not carry photos")
		}
	}

	if err := svc.Delete(ctx, "2"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.Delete(ctx, "2"); err != nil {
		t.Fatalf("second delete must be silent, got %v", err)
	}
	if _, found, _ := svc.Get(ctx, "2"); found {
		t.Fatalf("expected 2 to be gone")
	}
	if n, _ := svc.Count(ctx); n != 2 {
		t.Fatalf("expected count 2, got %d", n)
	}
}

func TestGet_MissingIsNotAnError(t *testing.T) {
	_, found, err := NewService(newTestRepo(), nil).Get(context.Background(), "nope")
	if err != nil || found {
		t.Fatalf("expected found=false err=nil, got %v %v", found, err)
	}
}

func TestAges_IncludesNulls(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo()
	repo.nulls = 1
	svc := NewService(repo, nil)
	_, _ = svc.Save(ctx, "", newStudent("1"))

	ages, err := svc.Ages(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ages) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(ages))
	}
}
