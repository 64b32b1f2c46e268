package cli

import (
	"github.com/formcraft/formbuilder-api/internal/config"
	"github.com/formcraft/formbuilder-api/internal/repositories/postgres"
	"github.com/formcraft/formbuilder-api/internal/utils"
	"github.com/formcraft/formbuilder-api/internal/validator"
	"github.com/formcraft/formbuilder-api/pkg"
	"github.com/spf13/cobra"
)

// NewMigrateCmd creates or updates the forms and responses tables.
func NewMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			logger := utils.NewLogger(cfg.Environment)

			db, err := pkg.InitDatabase(cfg)
			if err != nil {
				return err
			}
			repo := postgres.NewRepository(db, validator.New())
			defer repo.Close()

			if err := repo.Migrate(cmd.Context()); err != nil {
				logger.LogError(err, "Migration failed")
				return err
			}
			logger.Info("Migrations applied")
			return nil
		},
	}
}
