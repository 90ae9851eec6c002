package students

import "context"

type Repository interface {
	// List devuelve todos los alumnos sin foto, ordenados por ID.
	List(ctx context.Context) ([]Student, error)
	// Get devuelve found=false si no existe; no es un error.
	Get(ctx context.Context, id string) (Student, bool, error)
	// Insert devuelve un error que envuelve errs.ErrConflict si el ID ya existe.
	Insert(ctx context.Context, s Student) error
	// Update reemplaza los campos mutables; si el ID no existe no hace nada.
	Update(ctx context.Context, s Student) error
	// Delete no falla si el ID no existe.
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
	// Ages devuelve una entrada por alumno; nil cuando la edad es NULL.
	Ages(ctx context.Context) ([]*int, error)
}
