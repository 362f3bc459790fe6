package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/jhoicas/concar-rcp/pkg/concar"
)

// VerifyResult resumen de un archivo posicional leído.
type VerifyResult struct {
	Records     int
	Total       decimal.Decimal
	Clients     []concar.ClientTotal
	Correlative int // 0 si el nombre no es RCP
	// InvalidTaxIDs RUC (cliente o proveedor) con dígito verificador incorrecto, sin repetir.
	InvalidTaxIDs []string
}

// NewVerifyCommand crea el comando verificar.
func NewVerifyCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "verificar <archivo.txt>",
		Short: "Verifica un archivo posicional RCP",
		Long: `Lee un archivo de ancho fijo, comprueba cada línea y muestra la cantidad
de registros y el importe total. Termina con error si alguna línea está mal formada.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			charset := rootOpts.Charset
			if charset == "" {
				charset = concar.CharsetWindows1252
			}
			res, err := VerifyFile(args[0], charset)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if res.Correlative > 0 {
				fmt.Fprintf(out, "correlativo: %d\n", res.Correlative)
			}
			fmt.Fprintf(out, "registros: %d\n", res.Records)
			fmt.Fprintf(out, "total: %s\n", res.Total.StringFixed(concar.AmountDecimals))
			for _, ruc := range res.InvalidTaxIDs {
				fmt.Fprintf(cmd.ErrOrStderr(), "advertencia: RUC %s con dígito verificador inválido\n", ruc)
			}
			if rootOpts.Verbose {
				for _, c := range res.Clients {
					fmt.Fprintf(out, "  %s|%s\n", c.ClientTaxID, c.Total.StringFixed(concar.AmountDecimals))
				}
			}
			return nil
		},
	}
}

// VerifyFile lee y valida el archivo en path con el juego de caracteres indicado.
func VerifyFile(path, charset string) (*VerifyResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("leer %s: %w", path, err)
	}
	text, err := concar.DecodeCharset(data, charset)
	if err != nil {
		return nil, err
	}
	records, err := concar.ParseFixedWidth(text)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}

	res := &VerifyResult{Records: len(records), Total: decimal.Zero, Clients: concar.SummarizeByClient(records)}
	seen := make(map[string]bool)
	for _, r := range records {
		res.Total = res.Total.Add(r.Amount)
		for _, ruc := range []string{r.ClientTaxID, r.ProviderTaxID} {
			if ruc == "" || seen[ruc] {
				continue
			}
			seen[ruc] = true
			if concar.ValidateRUC(ruc) != nil {
				res.InvalidTaxIDs = append(res.InvalidTaxIDs, ruc)
			}
		}
	}
	if _, n, err := concar.ParseFilename(filepath.Base(path)); err == nil {
		res.Correlative = n
	}
	return res, nil
}
