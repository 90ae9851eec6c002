package students

// Sex del alumno, tal como se guarda en la columna char(1).
type Sex string

const (
	SexMale   Sex = "M"
	SexFemale Sex = "F"
)

func (s Sex) Valid() bool {
	return s == SexMale || s == SexFemale
}

// Student es un alumno. ID es la matrícula: la asigna el usuario y no cambia.
type Student struct {
	ID   string
	Name string
	// DocumentNumber es el documento del alumno (cpf). Opcional.
	DocumentNumber string
	Course         string
	Age            int
	Sex            Sex

	// nil = sin foto. List nunca la carga.
	Photo []byte
}
