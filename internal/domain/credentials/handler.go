package credentials

import (
	"net/http"
	"time"

	"student-pet-records/internal/middleware"
	"student-pet-records/internal/platform/httpjson"
	"student-pet-records/internal/ports/auth"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes monta /auth/login (público) y /users (requiere token).
func RegisterRoutes(r chi.Router, svc *Service, tokens auth.TokenIssuer) {
	r.Post("/auth/login", loginHandler(svc, tokens))

	r.Route("/users", func(ur chi.Router) {
		ur.Use(middleware.RequireClaims)
		ur.Post("/", createUserHandler(svc))
		ur.Get("/{login}", userExistsHandler(svc))
	})
}

type loginRequest struct {
	Login    string `json:"login" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token     string    `json:"token"`
	TokenType string    `json:"token_type"`
	ExpiresAt time.Time `json:"expires_at"`
}

type createUserRequest struct {
	Login    string `json:"login" validate:"required,max=64"`
	Password string `json:"password" validate:"required,min=4"`
}

type userResponse struct {
	Login  string `json:"login"`
	Exists bool   `json:"exists"`
}

// loginHandler godoc
// @Summary Login
// @Description Valida login y contraseña contra la tabla de credenciales y devuelve un token de sesión (JWT). 401 si no coinciden, 503 si la base no responde.
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body loginRequest true "Credenciales"
// @Success 200 {object} loginResponse
// @Failure 400 {object} httpjson.ErrorResponse "payload inválido"
// @Failure 401 {object} httpjson.ErrorResponse "invalid credentials"
// @Failure 503 {object} httpjson.ErrorResponse "service unavailable"
// @Router /auth/login [post]
func loginHandler(svc *Service, tokens auth.TokenIssuer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.Error(w, err)
			return
		}

		outcome, err := svc.Authenticate(r.Context(), req.Login, req.Password)
		switch {
		case outcome == OutcomeUnavailable:
			httpjson.Error(w, err)
			return
		case !outcome.OK():
			httpjson.Fail(w, http.StatusUnauthorized, "invalid credentials")
			return
		}

		tok, err := tokens.Issue(r.Context(), req.Login)
		if err != nil {
			httpjson.Fail(w, http.StatusInternalServerError, "internal error")
			return
		}

		httpjson.Write(w, http.StatusOK, loginResponse{
			Token:     tok.Value,
			TokenType: "Bearer",
			ExpiresAt: tok.ExpiresAt,
		})
	}
}

// createUserHandler godoc
// @Summary Crear usuario
// @Description Registra un login nuevo guardando solo el hash SHA-256 de la contraseña.
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body createUserRequest true "Login y contraseña"
// @Success 201 {object} userResponse
// @Failure 400 {object} httpjson.ErrorResponse "payload inválido"
// @Failure 401 {object} httpjson.ErrorResponse "unauthorized"
// @Failure 409 {object} httpjson.ErrorResponse "login already exists"
// @Failure 503 {object} httpjson.ErrorResponse "service unavailable"
// @Router /users [post]
func createUserHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createUserRequest
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.Error(w, err)
			return
		}

		outcome, err := svc.Create(r.Context(), req.Login, req.Password)
		if err != nil {
			httpjson.Error(w, err)
			return
		}
		if outcome == OutcomeDuplicate {
			httpjson.Fail(w, http.StatusConflict, "login already exists")
			return
		}

		httpjson.Write(w, http.StatusCreated, userResponse{Login: req.Login, Exists: true})
	}
}

// userExistsHandler godoc
// @Summary Verificar usuario
// @Description Indica si existe un login. No expone el hash.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param login path string true "Login"
// @Success 200 {object} userResponse
// @Failure 401 {object} httpjson.ErrorResponse "unauthorized"
// @Failure 503 {object} httpjson.ErrorResponse "service unavailable"
// @Router /users/{login} [get]
func userExistsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		login := chi.URLParam(r, "login")

		ok, err := svc.Exists(r.Context(), login)
		if err != nil {
			httpjson.Error(w, err)
			return
		}

		httpjson.Write(w, http.StatusOK, userResponse{Login: login, Exists: ok})
	}
}
