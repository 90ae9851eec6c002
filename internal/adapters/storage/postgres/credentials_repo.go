package postgres

import (
	"context"
	"database/sql"

	"student-pet-records/internal/domain/credentials"
)

type CredentialsRepo struct {
	db *sql.DB
}

func NewCredentialsRepo(db *sql.DB) *CredentialsRepo {
	return &CredentialsRepo{db: db}
}

func (r *CredentialsRepo) Insert(ctx context.Context, c credentials.Credential) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO credentials (login, password_hash)
		VALUES ($1, $2)
	`, c.Login, c.PasswordHash)
	return classify("insert credential", err)
}

func (r *CredentialsRepo) Match(ctx context.Context, login, passwordHash string) (bool, error) {
	var ok bool
	err := r.db.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM credentials WHERE login = $1 AND password_hash = $2
		)
	`, login, passwordHash).Scan(&ok)
	if err != nil {
		return false, classify("match credential", err)
	}
	return ok, nil
}

func (r *CredentialsRepo) Exists(ctx context.Context, login string) (bool, error) {
	var ok bool
	err := r.db.QueryRowContext(ctx, `
		SELECT EXISTS (SELECT 1 FROM credentials WHERE login = $1)
	`, login).Scan(&ok)
	if err != nil {
		return false, classify("credential exists", err)
	}
	return ok, nil
}
