package postgres

import (
	"context"
	"database/sql"
	"errors"

	"student-pet-records/internal/domain/students"
)

type StudentsRepo struct {
	db *sql.DB
}

func NewStudentsRepo(db *sql.DB) *StudentsRepo {
	return &StudentsRepo{db: db}
}

func (r *StudentsRepo) Insert(ctx context.Context, s students.Student) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO students (id, name, course, age, sex, photo, document_number)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
	`,
		s.ID,
		s.Name,
		s.Course,
		s.Age,
		string(s.Sex),
		s.Photo,
		s.DocumentNumber,
	)
	return classify("insert student", err)
}

// Update reemplaza todos los campos mutables. 0 filas afectadas no es error.
func (r *StudentsRepo) Update(ctx context.Context, s students.Student) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE students
		SET
			name = $2,
			course = $3,
			age = $4,
			sex = $5,
			photo = $6,
			document_number = $7
		WHERE id = $1
	`,
		s.ID,
		s.Name,
		s.Course,
		s.Age,
		string(s.Sex),
		s.Photo,
		s.DocumentNumber,
	)
	return classify("update student", err)
}

func (r *StudentsRepo) Get(ctx context.Context, id string) (students.Student, bool, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, document_number, course, age, sex, photo
		FROM students
		WHERE id = $1
	`, id)

	var (
		sr    studentRow
		photo []byte
	)
	if err := row.Scan(&sr.id, &sr.name, &sr.document, &sr.course, &sr.age, &sr.sex, &photo); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return students.Student{}, false, nil
		}
		return students.Student{}, false, classify("get student", err)
	}

	s := sr.student()
	s.Photo = photo
	return s, true, nil
}

func (r *StudentsRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM students WHERE id = $1`, id)
	return classify("delete student", err)
}

func (r *StudentsRepo) List(ctx context.Context) ([]students.Student, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, document_number, course, age, sex
		FROM students
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, classify("list students", err)
	}
	defer rows.Close()

	out := make([]students.Student, 0)
	for rows.Next() {
		var sr studentRow
		if err := rows.Scan(&sr.id, &sr.name, &sr.document, &sr.course, &sr.age, &sr.sex); err != nil {
			return nil, classify("scan student", err)
		}
		out = append(out, sr.student())
	}

	return out, classify("list students", rows.Err())
}

func (r *StudentsRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM students`).Scan(&n); err != nil {
		return 0, classify("count students", err)
	}
	return n, nil
}

func (r *StudentsRepo) Ages(ctx context.Context) ([]*int, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT age FROM students`)
	if err != nil {
		return nil, classify("list ages", err)
	}
	defer rows.Close()

	out := make([]*int, 0)
	for rows.Next() {
		var age sql.NullInt64
		if err := rows.Scan(&age); err != nil {
			return nil, classify("scan age", err)
		}
		if age.Valid {
			v := int(age.Int64)
			out = append(out, &v)
		} else {
			out = append(out, nil)
		}
	}

	return out, classify("list ages", rows.Err())
}

// studentRow tolera NULLs en filas viejas.
type studentRow struct {
	id       string
	name     sql.NullString
	document sql.NullString
	course   sql.NullString
	age      sql.NullInt64
	sex      sql.NullString
}

func (sr studentRow) student() students.Student {
	return students.Student{
		ID:             sr.id,
		Name:           sr.name.String,
		DocumentNumber: sr.document.String,
		Course:         sr.course.String,
		Age:            int(sr.age.Int64),
		Sex:            students.Sex(sr.sex.String),
	}
}
