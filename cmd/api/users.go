package main

import (
	"errors"
	"fmt"

	"student-pet-records/internal/domain/credentials"

	"github.com/spf13/cobra"
)

func newUsersCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Administra credenciales de acceso",
	}
	cmd.AddCommand(newUsersCreateCmd(root), newUsersExistsCmd(root))
	return cmd
}

func newUsersCreateCmd(root *rootOptions) *cobra.Command {
	var login, password string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Crea un login (guarda solo el hash de la contraseña)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := root.bootstrap(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			outcome, err := a.Services.Credentials.Create(cmd.Context(), login, password)
			if err != nil {
				return err
			}
			if outcome == credentials.OutcomeDuplicate {
				return fmt.Errorf("login %q already exists", login)
			}
			if !outcome.OK() {
				return errors.New("could not create login")
			}

			fmt.Fprintf(cmd.OutOrStdout(), "login %q created\n", login)
			return nil
		},
	}
	cmd.Flags().StringVar(&login, "login", "", "login")
	cmd.Flags().StringVar(&password, "password", "", "contraseña")
	_ = cmd.MarkFlagRequired("login")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newUsersExistsCmd(root *rootOptions) *cobra.Command {
	var login string

	cmd := &cobra.Command{
		Use:   "exists",
		Short: "Indica si existe un login",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := root.bootstrap(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			ok, err := a.Services.Credentials.Exists(cmd.Context(), login)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ok)
			return nil
		},
	}
	cmd.Flags().StringVar(&login, "login", "", "login")
	_ = cmd.MarkFlagRequired("login")
	return cmd
}
