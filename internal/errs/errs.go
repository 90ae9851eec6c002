// Package errs define los errores compartidos entre dominios y adapters.
//
// Los repositorios devuelven (o envuelven) uno de los sentinels de este paquete
// para que servicios y handlers decidan con errors.Is sin conocer el driver.
package errs

import (
	"errors"
	"net/http"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrConflict     = errors.New("conflict")
	ErrUnavailable  = errors.New("storage unavailable")
)

// FieldError describe un problema de validación sobre un campo concreto.
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// Error asocia un sentinel (Kind) con un mensaje apto para el cliente.
// El error original (cause) queda disponible para logs vía errors.Unwrap.
type Error struct {
	Kind    error
	Message string
	Fields  []FieldError

	cause error
}

func New(kind error, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, cause: cause}
}

func Invalid(message string, fields []FieldError) *Error {
	return &Error{Kind: ErrInvalidInput, Message: message, Fields: fields}
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.Kind.Error()
	}
	if e.cause != nil {
		return msg + ": " + e.cause.Error()
	}
	return msg
}

func (e *Error) Unwrap() []error {
	if e.cause == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.cause}
}

// Unavailable marca err como fallo de infraestructura si todavía no lo es.
func Unavailable(err error) error {
	if err == nil || errors.Is(err, ErrUnavailable) {
		return err
	}
	return New(ErrUnavailable, "", err)
}

// HTTPStatus traduce un error de dominio a status HTTP.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	case errors.Is(err, ErrUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage devuelve el texto que se puede mostrar al cliente.
// Nunca incluye detalles del motor de base de datos.
func PublicMessage(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Message != "" {
		return e.Message
	}
	switch {
	case errors.Is(err, ErrInvalidInput):
		return "invalid input"
	case errors.Is(err, ErrNotFound):
		return "not found"
	case errors.Is(err, ErrConflict):
		return "already exists"
	case errors.Is(err, ErrUnavailable):
		return "service unavailable"
	default:
		return "internal error"
	}
}

// FieldsOf extrae los errores por campo, si los hay.
func FieldsOf(err error) []FieldError {
	var e *Error
	if errors.As(err, &e) {
		return e.Fields
	}
	return nil
}
