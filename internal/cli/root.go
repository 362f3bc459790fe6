// Package cli implementa concarctl, la herramienta de línea de comandos para operar
// el registro fuera del servidor HTTP (migraciones, exportación y verificación de archivos).
package cli

import (
	"github.com/spf13/cobra"

	"github.com/jhoicas/concar-rcp/pkg/config"
	"github.com/jhoicas/concar-rcp/pkg/logger"
)

// RootOptions flags globales de todos los comandos.
type RootOptions struct {
	Verbose bool
	Charset string
}

// NewRootCommand crea el comando raíz de concarctl.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "concarctl",
		Short: "Herramientas del registro de documentos CONCAR",
		Long: `concarctl aplica las migraciones, exporta lotes ya registrados y verifica
archivos posicionales RCP antes de importarlos en CONCAR.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "salida detallada")
	cmd.PersistentFlags().StringVar(&opts.Charset, "charset", "", "juego de caracteres de los archivos (por defecto EXPORT_CHARSET)")

	cmd.AddCommand(NewMigrateCommand(opts))
	cmd.AddCommand(NewExportCommand(opts))
	cmd.AddCommand(NewVerifyCommand(opts))

	return cmd
}

// commandLogger logger a stderr; en modo verbose baja a debug.
func commandLogger(cmd *cobra.Command, opts *RootOptions, cfg *config.Config) *logger.Logger {
	level := cfg.App.LogLevel
	if opts.Verbose {
		level = "debug"
	}
	return logger.New(logger.Config{Env: "development", Level: level, Output: cmd.ErrOrStderr()})
}

// charset flag explícito o, si no, el configurado.
func (o *RootOptions) charset(cfg *config.Config) string {
	if o.Charset != "" {
		return o.Charset
	}
	if cfg != nil {
		return cfg.Export.Charset
	}
	return ""
}
