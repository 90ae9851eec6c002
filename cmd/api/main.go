package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"student-pet-records/internal/app"
	"student-pet-records/internal/config"
	"student-pet-records/internal/platform/logger"

	"github.com/spf13/cobra"
)

// @title Student Pet Records API
// @version 1.0
// @description API de alumnos, mascotas, credenciales y reportes.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Token de /auth/login con el prefijo Bearer.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

type rootOptions struct {
	configPath string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "records",
		Short:         "Registro de alumnos y mascotas",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", config.DefaultConnFile,
		"archivo de conexión (host='...'; port='...'; ...). Las variables RECORDS_* lo pisan")

	cmd.AddCommand(
		newServeCmd(opts),
		newUsersCmd(opts),
		newReportCmd(opts),
	)
	return cmd
}

// bootstrap carga config, logger y storage. El caller cierra la App.
func (o *rootOptions) bootstrap(ctx context.Context) (*app.App, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.App.Name,
		Output: os.Stderr,
	})

	a, err := app.New(ctx, cfg, log)
	if err != nil {
		log.Error("app.bootstrap", map[string]any{"driver": cfg.Storage.Driver, "err": err})
		return nil, err
	}
	return a, nil
}
