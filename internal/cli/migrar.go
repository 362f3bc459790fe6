package cli

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jhoicas/concar-rcp/internal/infrastructure/postgres"
	"github.com/jhoicas/concar-rcp/pkg/config"
)

// NewMigrateCommand crea el comando migrar.
func NewMigrateCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrar",
		Short: "Aplica las migraciones embebidas en la base de datos",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			log := commandLogger(cmd, rootOpts, cfg)
			version, err := postgres.Migrate(cfg.DB.ConnectionString())
			if err != nil {
				return err
			}
			log.Debug().Uint("version", version).Msg("migraciones aplicadas")
			fmt.Fprintf(cmd.OutOrStdout(), "esquema en versión %d\n", version)
			return nil
		},
	}
}

func loadConfig() (*config.Config, error) {
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("cargar configuración: %w", err)
	}
	return cfg, nil
}
