package reports

import (
	"bytes"
	"context"
	"errors"
	"strconv"
	"testing"

	"student-pet-records/internal/domain/students"
)

type fakeSource struct {
	list []students.Student
	ages []*int
	err  error
}

func (f *fakeSource) List(ctx context.Context) ([]students.Student, error) {
	return f.list, f.err
}

func (f *fakeSource) Count(ctx context.Context) (int, error) {
	return len(f.list), f.err
}

func (f *fakeSource) Ages(ctx context.Context) ([]*int, error) {
	return f.ages, f.err
}

func intp(v int) *int { return &v }

func agesOf(vals ...int) []*int {
	out := make([]*int, 0, len(vals))
	for _, v := range vals {
		out = append(out, intp(v))
	}
	return out
}

func TestBracketOf_Boundaries(t *testing.T) {
	cases := []struct {
		age  *int
		want string
	}{
		{intp(18), Bracket18To25},
		{intp(25), Bracket18To25},
		{intp(26), Bracket26To30},
		{intp(30), Bracket26To30},
		{intp(31), Bracket31To40},
		{intp(40), Bracket31To40},
		{intp(41), Bracket41To50},
		{intp(50), Bracket41To50},
		{intp(51), Bracket51Plus},
		{intp(17), Bracket51Plus}, // menores de 18 caen en el ELSE
		{intp(0), Bracket51Plus},
		{nil, Bracket51Plus},
	}
	for _, tc := range cases {
		if got := BracketOf(tc.age); got != tc.want {
			age := "nil"
			if tc.age != nil {
				age = strconv.Itoa(*tc.age)
			}
			t.Fatalf("BracketOf(%s) = %s, want %s", age, got, tc.want)
		}
	}
}

func TestCountByAgeBracket(t *testing.T) {
	src := &fakeSource{ages: agesOf(17, 18, 25, 26, 30, 40, 50, 51, 70)}
	svc := NewService(src, nil)

	got, err := svc.CountByAgeBracket(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := map[string]int{
		Bracket18To25: 2,
		Bracket26To30: 2,
		Bracket31To40: 1,
		Bracket41To50: 1,
		Bracket51Plus: 3,
	}
	for k, v := range want {
		if got[k] != v {
			t.Fatalf("bracket %s: expected %d, got %d (all=%v)", k, v, got[k], got)
		}
	}
}

func TestCountByAgeBracket_EmptyHasAllLabels(t *testing.T) {
	svc := NewService(&fakeSource{}, nil)

	got, err := svc.CountByAgeBracket(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 5 {
		t.Fatalf("expected 5 labels, got %v", got)
	}
	for _, b := range Brackets() {
		if v, ok := got[b]; !ok || v != 0 {
			t.Fatalf("expected %s=0, got %v (present=%v)", b, v, ok)
		}
	}
}

func TestCountByAgeBracket_NullAgesGoTo51Plus(t *testing.T) {
	src := &fakeSource{ages: []*int{nil, nil, intp(20)}}

	got, err := NewService(src, nil).CountByAgeBracket(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got[Bracket51Plus] != 2 || got[Bracket18To25] != 1 {
		t.Fatalf("unexpected counts %v", got)
	}
}

func TestTotalCount_ReflectsSource(t *testing.T) {
	src := &fakeSource{}
	svc := NewService(src, nil)
	ctx := context.Background()

	if n, _ := svc.TotalCount(ctx); n != 0 {
		t.Fatalf("expected 0, got %d", n)
	}

	// sin cache: el siguiente llamado ve los cambios
	src.list = []students.Student{{ID: "1"}, {ID: "2"}}
	if n, _ := svc.TotalCount(ctx); n != 2 {
		t.Fatalf("expected 2, got %d", n)
	}
}

func TestRosterAndExportCSV(t *testing.T) {
	src := &fakeSource{list: []students.Student{
		{ID: "2", Name: "Bruno, Jr", Course: "SI", Age: 30, Sex: students.SexMale, Photo: []byte("x")},
		{ID: "1", Name: "Ana", DocumentNumber: "123.456.789-00", Course: "ADS", Age: 20, Sex: students.SexFemale},
	}}
	svc := NewService(src, nil)
	ctx := context.Background()

	roster, err := svc.Roster(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if roster[0].ID != "1" || roster[1].Photo != nil {
		t.Fatalf("unexpected roster %+v", roster)
	}
	if src.list[0].Photo == nil {
		t.Fatalf("roster must not mutate the source rows")
	}

	var buf bytes.Buffer
	n, err := svc.ExportCSV(ctx, &buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 rows, got %d", n)
	}
	want := "id,name,document_number,course,age,sex\n1,Ana,123.456.789-00,ADS,20,F\n2,\"Bruno, Jr\",,SI,30,M\n"
	if buf.String() != want {
		t.Fatalf("unexpected csv:\n%s", buf.String())
	}
}

func TestExportCSV_EmptyWritesHeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	n, err := NewService(&fakeSource{}, nil).ExportCSV(context.Background(), &buf)
	if err != nil || n != 0 {
		t.Fatalf("expected 0 rows, got %d err=%v", n, err)
	}
	if buf.String() != "id,name,document_number,course,age,sex\n" {
		t.Fatalf("unexpected csv %q", buf.String())
	}
}

func TestSourceErrorsPropagate(t *testing.T) {
	boom := errors.New("boom")
	svc := NewService(&fakeSource{err: boom}, nil)
	ctx := context.Background()

	if _, err := svc.CountByAgeBracket(ctx); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if _, err := svc.TotalCount(ctx); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if _, err := svc.ExportCSV(ctx, &bytes.Buffer{}); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
}
