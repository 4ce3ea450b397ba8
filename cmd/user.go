package main

import (
	"errors"
	"fmt"
	"os"

	"resource_api/internal/repository"
	"resource_api/internal/service"

	"github.com/spf13/cobra"
)

const passwordEnv = envPrefix + "_PASSWORD"

func newUserCmd(a *app) *cobra.Command {
	userCmd := &cobra.Command{
		Use:   "user",
		Short: "Manage API credentials",
	}

	var password string
	add := &cobra.Command{
		Use:   "add <username>",
		Short: "Provision a Basic auth user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				password = os.Getenv(passwordEnv)
			}
			if password == "" {
				return fmt.Errorf("password required: pass --password or set %s", passwordEnv)
			}

			conn, err := a.openDB(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to init sqlite: %w", err)
			}
			defer a.closeDB(conn)

			auth := service.NewAuthService(repository.NewUserRepository(conn))
			id, err := auth.Register(cmd.Context(), args[0], password)
			if errors.Is(err, repository.ErrConflict) {
				return fmt.Errorf("user %q already exists", args[0])
			}
			if err != nil {
				return err
			}
			a.log.Infow("user_created", "id", id, "username", args[0])
			return nil
		},
	}
	add.Flags().StringVar(&password, "password", "", "password for the new user (or "+passwordEnv+")")

	userCmd.AddCommand(add)
	return userCmd
}
