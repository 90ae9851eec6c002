package credentials

import "context"

type Repository interface {
	// Insert devuelve un error que envuelve errs.ErrConflict si el login ya existe.
	Insert(ctx context.Context, c Credential) error
	// Match indica si existe una fila con ese login y ese hash exactos.
	Match(ctx context.Context, login, passwordHash string) (bool, error)
	Exists(ctx context.Context, login string) (bool, error)
}
