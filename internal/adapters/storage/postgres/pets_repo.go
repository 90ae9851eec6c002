package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"student-pet-records/internal/domain/pets"
)

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

func (r *PetsRepo) Insert(ctx context.Context, p pets.Pet) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO pets (nickname, breed, birth_date, photo, owner_id)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING id
	`,
		p.Nickname,
		p.Breed,
		toNullDate(p.BirthDate),
		p.Photo,
		p.OwnerID,
	).Scan(&id)
	if err != nil {
		return 0, classify("insert pet", err)
	}
	return id, nil
}

func (r *PetsRepo) Update(ctx context.Context, p pets.Pet) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE pets
		SET
			nickname = $2,
			breed = $3,
			birth_date = $4,
			photo = $5,
			owner_id = $6
		WHERE id = $1
	`,
		p.ID,
		p.Nickname,
		p.Breed,
		toNullDate(p.BirthDate),
		p.Photo,
		p.OwnerID,
	)
	return classify("update pet", err)
}

func (r *PetsRepo) Get(ctx context.Context, id int64) (pets.Pet, bool, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, nickname, breed, birth_date, photo, owner_id
		FROM pets
		WHERE id = $1
	`, id)

	var p pets.Pet
	var bd sql.NullTime
	if err := row.Scan(&p.ID, &p.Nickname, &p.Breed, &bd, &p.Photo, &p.OwnerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return pets.Pet{}, false, nil
		}
		return pets.Pet{}, false, classify("get pet", err)
	}
	p.BirthDate = fromNullDate(bd)

	return p, true, nil
}

func (r *PetsRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM pets WHERE id = $1`, id)
	return classify("delete pet", err)
}

func (r *PetsRepo) List(ctx context.Context) ([]pets.Pet, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, nickname, breed, birth_date, owner_id
		FROM pets
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, classify("list pets", err)
	}
	return scanPets(rows)
}

func (r *PetsRepo) ListByOwner(ctx context.Context, ownerID string) ([]pets.Pet, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, nickname, breed, birth_date, owner_id
		FROM pets
		WHERE owner_id = $1
		ORDER BY id ASC
	`, ownerID)
	if err != nil {
		return nil, classify("list pets by owner", err)
	}
	return scanPets(rows)
}

// scanPets lee filas sin foto y cierra rows.
func scanPets(rows *sql.Rows) ([]pets.Pet, error) {
	defer rows.Close()

	out := make([]pets.Pet, 0)
	for rows.Next() {
		var p pets.Pet
		var bd sql.NullTime
		if err := rows.Scan(&p.ID, &p.Nickname, &p.Breed, &bd, &p.OwnerID); err != nil {
			return nil, classify("scan pet", err)
		}
		p.BirthDate = fromNullDate(bd)
		out = append(out, p)
	}

	return out, classify("list pets", rows.Err())
}

// birth_date es DATE, lo pasamos como NullTime para simplificar
func toNullDate(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{Valid: false}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func fromNullDate(nt sql.NullTime) *time.Time {
	if !nt.Valid {
		return nil
	}
	// pgx devuelve DATE como medianoche UTC
	t := nt.Time
	return &t
}
