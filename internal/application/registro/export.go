package registro

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/concar-rcp/internal/domain"
	"github.com/jhoicas/concar-rcp/internal/domain/repository"
	"github.com/jhoicas/concar-rcp/pkg/concar"
)

// Formatos de exportación de un lote.
const (
	FormatFixedWidth = "fijo"    // archivo posicional CONCAR (canónico)
	FormatSummary    = "resumen" // ruc|importe_total por cliente
	FormatPDF        = "pdf"     // reporte imprimible
)

// ExportFile archivo listo para descargar o escribir en disco.
type ExportFile struct {
	Name        string
	ContentType string
	Data        []byte
}

// ExportUseCase genera los archivos de un lote ya persistido.
type ExportUseCase struct {
	documentRepo repository.DocumentRepository
	batchRepo    repository.BatchRepository
	pdf          BatchPDFGenerator
	charset      string
}

// NewExportUseCase construye el caso de uso. charset aplica a las salidas de texto; pdf puede ser nil
// si no se necesita el reporte.
func NewExportUseCase(
	documentRepo repository.DocumentRepository,
	batchRepo repository.BatchRepository,
	pdf BatchPDFGenerator,
	charset string,
) *ExportUseCase {
	if charset == "" {
		charset = concar.CharsetWindows1252
	}
	return &ExportUseCase{documentRepo: documentRepo, batchRepo: batchRepo, pdf: pdf, charset: charset}
}

// Export carga el lote filename y lo renderiza en el formato pedido.
//
// Retorna:
//   - domain.ErrNotFound     si el lote no existe.
//   - domain.ErrInvalidInput si el formato no es fijo, resumen ni pdf.
func (uc *ExportUseCase) Export(ctx context.Context, filename, format string) (*ExportFile, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = FormatFixedWidth
	}
	switch format {
	case FormatFixedWidth, FormatSummary, FormatPDF:
	default:
		return nil, fmt.Errorf("%w: formato %q no soportado", domain.ErrInvalidInput, format)
	}

	batch, docs, err := loadBatch(ctx, uc.batchRepo, uc.documentRepo, filename)
	if err != nil {
		return nil, err
	}
	base := strings.TrimSuffix(batch.Filename, ".txt")

	switch format {
	case FormatSummary:
		data, err := concar.EncodeCharset(concar.EncodePipeSummary(toRecords(docs)), uc.charset)
		if err != nil {
			return nil, fmt.Errorf("exportar resumen: %w", err)
		}
		return &ExportFile{Name: base + "-resumen.txt", ContentType: uc.textContentType(), Data: data}, nil
	case FormatPDF:
		if uc.pdf == nil {
			return nil, fmt.Errorf("exportar pdf: generador no configurado")
		}
		data, err := uc.pdf.GenerateBatchReport(batch, docs)
		if err != nil {
			return nil, fmt.Errorf("exportar pdf: %w", err)
		}
		return &ExportFile{Name: base + ".pdf", ContentType: "application/pdf", Data: data}, nil
	default:
		text, err := concar.EncodeFixedWidth(toRecords(docs))
		if err != nil {
			return nil, fmt.Errorf("exportar archivo posicional: %w", err)
		}
		data, err := concar.EncodeCharset(text, uc.charset)
		if err != nil {
			return nil, fmt.Errorf("exportar archivo posicional: %w", err)
		}
		return &ExportFile{Name: batch.Filename, ContentType: uc.textContentType(), Data: data}, nil
	}
}

func (uc *ExportUseCase) textContentType() string {
	return "text/plain; charset=" + strings.ToLower(uc.charset)
}
