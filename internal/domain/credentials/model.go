package credentials

// Credential es un par login / hash. La contraseña en claro nunca se guarda.
type Credential struct {
	Login        string
	PasswordHash string
}

// Outcome es el resultado de una operación de credenciales.
// Separa "denegado" de "no se pudo consultar" para que el caller no los confunda.
type Outcome int

const (
	OutcomeDenied Outcome = iota
	OutcomeGranted
	OutcomeDuplicate
	OutcomeUnavailable
)

func (o Outcome) String() string {
	switch o {
	case OutcomeGranted:
		return "granted"
	case OutcomeDuplicate:
		return "duplicate"
	case OutcomeUnavailable:
		return "unavailable"
	default:
		return "denied"
	}
}

// OK es la señal booleana simple (true solo si se concedió).
func (o Outcome) OK() bool {
	return o == OutcomeGranted
}
