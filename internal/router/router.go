package router

import (
	"net/http"

	_ "student-pet-records/docs"
	"student-pet-records/internal/app"
	"student-pet-records/internal/domain/credentials"
	"student-pet-records/internal/domain/pets"
	"student-pet-records/internal/domain/reports"
	"student-pet-records/internal/domain/students"
	"student-pet-records/internal/middleware"
	"student-pet-records/internal/platform/logger"
	"student-pet-records/internal/ports/auth"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Services app.Services

	// Verifier valida los Bearer tokens; Tokens los emite en /auth/login.
	// Normalmente ambos son el mismo token.Manager.
	Verifier auth.AuthVerifier
	Tokens   auth.TokenIssuer

	Logger logger.Logger
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(opts.Logger))
	r.Use(chimw.Recoverer)

	r.Use(middleware.AuthContext(opts.Verifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	svcs := opts.Services

	// /auth/login es público; /users se protege dentro del módulo.
	credentials.RegisterRoutes(r, svcs.Credentials, opts.Tokens)

	// Todo lo demás exige sesión.
	r.Group(func(pr chi.Router) {
		pr.Use(middleware.RequireClaims)

		students.RegisterRoutes(pr, svcs.Students, pets.OwnerRoutes(svcs.Pets))
		pets.RegisterRoutes(pr, svcs.Pets)
		reports.RegisterRoutes(pr, svcs.Reports)
	})

	return r
}
