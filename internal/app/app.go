// Package app arma repositorios y servicios a partir de la configuración.
// Lo usan tanto el servidor HTTP como los comandos de la CLI.
package app

import (
	"context"
	"database/sql"
	"fmt"

	mem "student-pet-records/internal/adapters/storage/memory"
	pg "student-pet-records/internal/adapters/storage/postgres"
	"student-pet-records/internal/config"
	"student-pet-records/internal/domain/credentials"
	"student-pet-records/internal/domain/pets"
	"student-pet-records/internal/domain/reports"
	"student-pet-records/internal/domain/students"
	"student-pet-records/internal/platform/logger"
)

type Repositories struct {
	Students    students.Repository
	Pets        pets.Repository
	Credentials credentials.Repository
}

func MemoryRepositories() Repositories {
	return Repositories{
		Students:    mem.NewStudentRepo(),
		Pets:        mem.NewPetRepo(),
		Credentials: mem.NewCredentialRepo(),
	}
}

func PostgresRepositories(db *sql.DB) Repositories {
	return Repositories{
		Students:    pg.NewStudentsRepo(db),
		Pets:        pg.NewPetsRepo(db),
		Credentials: pg.NewCredentialsRepo(db),
	}
}

type Services struct {
	Credentials *credentials.Service
	Students    *students.Service
	Pets        *pets.Service
	Reports     *reports.Service
}

func NewServices(repos Repositories, log logger.Logger) Services {
	studentsSvc := students.NewService(repos.Students, log)
	return Services{
		Credentials: credentials.NewService(repos.Credentials, log),
		Students:    studentsSvc,
		// students.Service hace de directorio de dueños para pets
		Pets:    pets.NewService(repos.Pets, studentsSvc, log),
		Reports: reports.NewService(studentsSvc, log),
	}
}

// App es lo que necesita un proceso: servicios listos y el recurso a cerrar.
type App struct {
	Config   *config.Config
	Log      logger.Logger
	Services Services

	db *sql.DB
}

// New abre el storage indicado en cfg.Storage.Driver.
// Con postgres crea las tablas si no existen. En memoria siembra la
// credencial de cfg.Auth.BootstrapLogin, si hay.
func New(ctx context.Context, cfg *config.Config, log logger.Logger) (*App, error) {
	log = logger.OrNop(log)

	a := &App{Config: cfg, Log: log}

	var repos Repositories
	switch cfg.Storage.Driver {
	case config.DriverMemory:
		repos = MemoryRepositories()
	case config.DriverPostgres:
		db, err := pg.Open(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}
		if err := pg.EnsureSchema(ctx, db); err != nil {
			_ = db.Close()
			return nil, err
		}
		a.db = db
		repos = PostgresRepositories(db)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}

	log.Info("app.storage", map[string]any{"driver": cfg.Storage.Driver})
	a.Services = NewServices(repos, log)

	if cfg.Storage.Driver == config.DriverMemory && cfg.Auth.BootstrapLogin != "" {
		out, err := a.Services.Credentials.Create(ctx, cfg.Auth.BootstrapLogin, cfg.Auth.BootstrapPassword)
		if err != nil {
			return nil, fmt.Errorf("seed bootstrap credential: %w", err)
		}
		log.Info("app.bootstrap_credential", map[string]any{"login": cfg.Auth.BootstrapLogin, "outcome": out.String()})
	}
	return a, nil
}

func (a *App) Close() error {
	if a == nil || a.db == nil {
		return nil
	}
	return a.db.Close()
}
