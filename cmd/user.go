package cmd

import (
	"context"
	"fmt"

	"redelex-panel/core/config"
	"redelex-panel/core/database"
	"redelex-panel/core/session"
	"redelex-panel/feature/usuarios"
	"redelex-panel/feature/usuarios/models"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	adminNombre   string
	adminEmail    string
	adminPassword string
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage panel accounts",
}

// createAdminCmd seeds an administrator account.
var createAdminCmd = &cobra.Command{
	Use:   "create-admin",
	Short: "Create an administrator account",
	Long:  `Creates an administrator with the default admin permissions. Fails if the email is taken.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		db, err := database.Connect(cfg.Database)
		if err != nil {
			return err
		}
		if err := database.Migrate(db, &models.Usuario{}); err != nil {
			return err
		}

		svc := usuarios.NewService(usuarios.NewRepository(db), zap.NewNop())
		v, err := svc.Create(context.Background(), usuarios.Input{
			Nombre:   adminNombre,
			Email:    adminEmail,
			Password: adminPassword,
			Rol:      session.RoleAdmin,
		})
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Administrator %s created with id %d\n", v.Email, v.ID)
		return nil
	},
}

func init() {
	createAdminCmd.Flags().StringVar(&adminNombre, "nombre", "Administrador", "display name")
	createAdminCmd.Flags().StringVar(&adminEmail, "email", "", "login email")
	createAdminCmd.Flags().StringVar(&adminPassword, "password", "", "initial password (min. 8 characters)")
	_ = createAdminCmd.MarkFlagRequired("email")
	_ = createAdminCmd.MarkFlagRequired("password")

	userCmd.AddCommand(createAdminCmd)
	RootCmd.AddCommand(userCmd)
}
