package pets

import "context"

type Repository interface {
	// List y ListByOwner devuelven mascotas sin foto, ordenadas por ID.
	List(ctx context.Context) ([]Pet, error)
	ListByOwner(ctx context.Context, ownerID string) ([]Pet, error)
	Get(ctx context.Context, id int64) (Pet, bool, error)
	// Insert ignora p.ID y devuelve el ID generado.
	Insert(ctx context.Context, p Pet) (int64, error)
	// Update no hace nada si el ID no existe.
	Update(ctx context.Context, p Pet) error
	Delete(ctx context.Context, id int64) error
}
