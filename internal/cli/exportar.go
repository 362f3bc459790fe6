package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jhoicas/concar-rcp/internal/application/registro"
	infrapdf "github.com/jhoicas/concar-rcp/internal/infrastructure/pdf"
	"github.com/jhoicas/concar-rcp/internal/infrastructure/postgres"
)

type exportOptions struct {
	filename string
	format   string
	outDir   string
}

// NewExportCommand crea el comando exportar.
func NewExportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &exportOptions{}

	cmd := &cobra.Command{
		Use:   "exportar",
		Short: "Escribe en disco un lote ya registrado",
		Long: `Genera el archivo de un lote persistido en el formato pedido:
  fijo     archivo posicional CONCAR (por defecto)
  resumen  ruc|importe por cliente
  pdf      reporte imprimible`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, rootOpts, opts)
		},
	}

	cmd.Flags().StringVar(&opts.filename, "archivo", "", "nombre del lote, ej. RCP20250115001.txt")
	cmd.Flags().StringVar(&opts.format, "formato", registro.FormatFixedWidth, "fijo|resumen|pdf")
	cmd.Flags().StringVar(&opts.outDir, "salida", ".", "directorio de salida")
	_ = cmd.MarkFlagRequired("archivo")

	return cmd
}

func runExport(cmd *cobra.Command, rootOpts *RootOptions, opts *exportOptions) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := commandLogger(cmd, rootOpts, cfg)

	pool, err := postgres.NewPool(cmd.Context(), cfg.DB)
	if err != nil {
		return fmt.Errorf("conexión a PostgreSQL: %w", err)
	}
	defer pool.Close()

	exportUC := registro.NewExportUseCase(
		postgres.NewDocumentRepository(pool),
		postgres.NewBatchRepository(pool),
		infrapdf.NewMarotoPDFGenerator(cfg.App.Name),
		rootOpts.charset(cfg),
	)
	file, err := exportUC.Export(cmd.Context(), opts.filename, opts.format)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(opts.outDir, 0o755); err != nil {
		return fmt.Errorf("crear directorio de salida: %w", err)
	}
	path := filepath.Join(opts.outDir, file.Name)
	if err := os.WriteFile(path, file.Data, 0o644); err != nil {
		return fmt.Errorf("escribir %s: %w", path, err)
	}
	log.Debug().Str("archivo", path).Int("bytes", len(file.Data)).Msg("lote exportado")
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}
