package cli

import (
	"fmt"

	"github.com/MKhiriev/go-library-catalog/internal/service"
	"github.com/MKhiriev/go-library-catalog/internal/validators"
	"github.com/MKhiriev/go-library-catalog/models"
	"github.com/spf13/cobra"
)

func (a *app) migrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			storages, err := a.openStorages(cmd.Context())
			if err != nil {
				return err
			}
			defer storages.Close()

			fmt.Fprintf(a.out, "migrations applied (%s)\n", a.cfg.Storage.DB.Driver)
			return nil
		},
	}
}

func (a *app) userCommand() *cobra.Command {
	userCmd := &cobra.Command{
		Use:   "user",
		Short: "Manage user accounts in the database",
	}

	var request models.SetRoleRequest
	var role string

	setRoleCmd := &cobra.Command{
		Use:   "set-role",
		Short: "Change the role of an existing user",
		Long:  `Change the role of an existing user. This is the only way to grant the admin role.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			request.Role = models.Role(role)

			storages, err := a.openStorages(cmd.Context())
			if err != nil {
				return err
			}
			defer storages.Close()

			users := service.NewUserService(storages.UserRepository, validators.NewCatalogValidator(), a.logger)
			if err = users.SetRole(cmd.Context(), request); err != nil {
				return err
			}

			fmt.Fprintf(a.out, "user %q now has role %q\n", request.Username, request.Role)
			return nil
		},
	}
	setRoleCmd.Flags().StringVarP(&request.Username, "username", "u", "", "username of the account")
	setRoleCmd.Flags().StringVarP(&role, "role", "r", string(models.RoleAdmin), `role to assign: "admin" or "user"`)
	_ = setRoleCmd.MarkFlagRequired("username")

	userCmd.AddCommand(setRoleCmd)
	return userCmd
}

func (a *app) versionCommand() *cobra.Command {
	var remote bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(a.out, a.buildInfo.String())
			if !remote {
				return nil
			}

			api, err := a.api()
			if err != nil {
				return err
			}
			version, err := api.Version(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintf(a.out, "Server version: %s\n", version)
			return nil
		},
	}
	cmd.Flags().BoolVar(&remote, "remote", false, "also query the server version")

	return cmd
}
