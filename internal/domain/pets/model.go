package pets

import "time"

// Pet es una mascota. ID lo genera el storage al insertar (0 = todavía no existe).
// OwnerID es la matrícula del alumno dueño.
type Pet struct {
	ID       int64
	Nickname string
	Breed    string

	// Solo fecha; nil = desconocida.
	BirthDate *time.Time

	// nil = sin foto. List y ListByOwner no la cargan.
	Photo []byte

	OwnerID string
}
