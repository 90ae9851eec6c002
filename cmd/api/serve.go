package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"student-pet-records/internal/adapters/auth/token"
	"student-pet-records/internal/router"

	"github.com/spf13/cobra"
)

func newServeCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Levanta la API HTTP",
		Long: `Levanta la API HTTP.

Con storage.driver=memory los datos viven solo en este proceso y "records users create"
no sirve para dar de alta usuarios. Configurar RECORDS_AUTH__BOOTSTRAP_LOGIN y
RECORDS_AUTH__BOOTSTRAP_PASSWORD para sembrar una credencial al arrancar.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			a, err := root.bootstrap(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			cfg := a.Config
			tokens := token.NewManager(cfg.Auth.TokenSecret, cfg.Auth.Issuer, cfg.Auth.TokenTTL)

			srv := &http.Server{
				Addr: cfg.HTTP.Addr,
				Handler: router.NewRouter(router.Options{
					Services: a.Services,
					Verifier: tokens,
					Tokens:   tokens,
					Logger:   a.Log,
				}),
				ReadTimeout:  cfg.HTTP.ReadTimeout,
				WriteTimeout: cfg.HTTP.WriteTimeout,
			}

			errCh := make(chan error, 1)
			go func() {
				a.Log.Info("http.start", map[string]any{"addr": cfg.HTTP.Addr, "env": cfg.App.Env})
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
				close(errCh)
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			a.Log.Info("http.shutdown", nil)
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}
}
