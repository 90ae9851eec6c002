package credentials

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"student-pet-records/internal/errs"
	"student-pet-records/internal/platform/logger"
)

type Service struct {
	repo Repository
	log  logger.Logger
}

func NewService(repo Repository, log logger.Logger) *Service {
	return &Service{
		repo: repo,
		log:  logger.OrNop(log).With(map[string]any{"module": "credentials"}),
	}
}

// El login se compara tal cual; solo se rechaza vacío o en blanco.
func blank(login string) bool {
	return strings.TrimSpace(login) == ""
}

// Authenticate compara login y hash de la contraseña contra lo guardado.
// Un fallo de storage devuelve OutcomeUnavailable junto con el error.
func (s *Service) Authenticate(ctx context.Context, login, password string) (Outcome, error) {
	if blank(login) || password == "" {
		s.log.Info("credentials.authenticate", map[string]any{"login": login, "outcome": OutcomeDenied.String()})
		return OutcomeDenied, nil
	}

	ok, err := s.repo.Match(ctx, login, HashPassword(password))
	if err != nil {
		s.log.Error("credentials.authenticate", map[string]any{"login": login, "err": err})
		return OutcomeUnavailable, errs.Unavailable(fmt.Errorf("authenticate: %w", err))
	}

	out := OutcomeDenied
	if ok {
		out = OutcomeGranted
	}
	s.log.Info("credentials.authenticate", map[string]any{"login": login, "outcome": out.String()})
	return out, nil
}

// Create guarda un login nuevo. Un login repetido no es error: OutcomeDuplicate.
func (s *Service) Create(ctx context.Context, login, password string) (Outcome, error) {
	var fields []errs.FieldError
	if blank(login) {
		fields = append(fields, errs.FieldError{Field: "login", Error: "is required"})
	}
	if password == "" {
		fields = append(fields, errs.FieldError{Field: "password", Error: "is required"})
	}
	if len(fields) > 0 {
		return OutcomeDenied, errs.Invalid("login and password are required", fields)
	}

	err := s.repo.Insert(ctx, Credential{Login: login, PasswordHash: HashPassword(password)})
	switch {
	case err == nil:
		s.log.Info("credentials.create", map[string]any{"login": login, "outcome": OutcomeGranted.String()})
		return OutcomeGranted, nil
	case errors.Is(err, errs.ErrConflict):
		s.log.Info("credentials.create", map[string]any{"login": login, "outcome": OutcomeDuplicate.String()})
		return OutcomeDuplicate, nil
	case errors.Is(err, errs.ErrInvalidInput):
		return OutcomeDenied, err
	default:
		s.log.Error("credentials.create", map[string]any{"login": login, "err": err})
		return OutcomeUnavailable, errs.Unavailable(fmt.Errorf("create credential: %w", err))
	}
}

func (s *Service) Exists(ctx context.Context, login string) (bool, error) {
	if blank(login) {
		return false, nil
	}

	ok, err := s.repo.Exists(ctx, login)
	if err != nil {
		s.log.Error("credentials.exists", map[string]any{"login": login, "err": err})
		return false, errs.Unavailable(fmt.Errorf("credential exists: %w", err))
	}
	s.log.Debug("credentials.exists", map[string]any{"login": login, "exists": ok})
	return ok, nil
}
