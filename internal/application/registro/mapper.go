package registro

import (
	"strings"
	"time"

	"github.com/jhoicas/concar-rcp/internal/application/dto"
	"github.com/jhoicas/concar-rcp/internal/domain"
	"github.com/jhoicas/concar-rcp/internal/domain/entity"
	domregistro "github.com/jhoicas/concar-rcp/internal/domain/registro"
	"github.com/jhoicas/concar-rcp/pkg/concar"
)

// toDocument normaliza una fila del formulario. row es 1-based y sólo se usa en los mensajes.
func toDocument(row int, in dto.DocumentInput) (*entity.Document, []domain.FieldError) {
	var errs []domain.FieldError
	doc := &entity.Document{
		ClientTaxID:    strings.TrimSpace(in.RucCliente),
		ProviderTaxID:  strings.TrimSpace(in.RucProveedor),
		DocumentType:   strings.TrimSpace(in.TipoDocumento),
		DocumentNumber: strings.TrimSpace(in.NroDocumento),
		InternalCode:   strings.TrimSpace(in.CodInternoDoc),
		Currency:       strings.TrimSpace(in.Mon),
	}
	amount, err := domregistro.ParseAmount(string(in.Importe))
	if err != nil {
		errs = append(errs, domain.FieldError{Row: row, Field: "importe", Message: err.Error()})
	}
	doc.Amount = amount

	dates := []struct {
		field string
		raw   string
		dst   **time.Time
	}{
		{"fecha_emision", in.FechaEmision, &doc.IssueDate},
		{"fecha_vencimiento", in.FechaVencimiento, &doc.DueDate},
		{"fecha_confirmacion", in.FechaConfirmacion, &doc.ConfirmationDate},
	}
	for _, d := range dates {
		t, err := domregistro.ParseDate(d.raw)
		if err != nil {
			errs = append(errs, domain.FieldError{Row: row, Field: d.field, Message: err.Error()})
			continue
		}
		*d.dst = t
	}
	errs = append(errs, domregistro.ValidateDocument(row, doc)...)
	return doc, errs
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(domregistro.DateLayout)
	return &s
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func toDocumentResponse(d *entity.Document) dto.DocumentResponse {
	return dto.DocumentResponse{
		ID:                d.ID,
		Correlativo:       d.Correlative,
		FechaLote:         d.BatchDate.Format(domregistro.DateLayout),
		NombreArchivo:     d.Filename,
		RucCliente:        d.ClientTaxID,
		RucProveedor:      d.ProviderTaxID,
		TipoDocumento:     d.DocumentType,
		NroDocumento:      d.DocumentNumber,
		CodInternoDoc:     optionalString(d.InternalCode),
		FechaEmision:      formatDate(d.IssueDate),
		FechaVencimiento:  formatDate(d.DueDate),
		FechaConfirmacion: formatDate(d.ConfirmationDate),
		Importe:           d.Amount.StringFixed(domregistro.AmountDecimals),
		Mon:               d.Currency,
		CreatedAt:         d.CreatedAt,
	}
}

func toDocumentResponses(docs []*entity.Document) []dto.DocumentResponse {
	out := make([]dto.DocumentResponse, 0, len(docs))
	for _, d := range docs {
		out = append(out, toDocumentResponse(d))
	}
	return out
}

func toBatchResponse(b *entity.Batch) dto.BatchResponse {
	return dto.BatchResponse{
		ID:                b.ID,
		Correlativo:       b.Correlative,
		Fecha:             b.BatchDate.Format(domregistro.DateLayout),
		NombreArchivo:     b.Filename,
		CantidadRegistros: b.DocumentCount,
		ImporteTotal:      b.TotalAmount.StringFixed(domregistro.AmountDecimals),
		CreatedAt:         b.CreatedAt,
	}
}

// toRecords convierte documentos persistidos en filas del archivo CONCAR.
func toRecords(docs []*entity.Document) []concar.Record {
	out := make([]concar.Record, 0, len(docs))
	for _, d := range docs {
		out = append(out, concar.Record{
			ClientTaxID:      d.ClientTaxID,
			ProviderTaxID:    d.ProviderTaxID,
			DocumentType:     d.DocumentType,
			DocumentNumber:   d.DocumentNumber,
			IssueDate:        d.IssueDate,
			DueDate:          d.DueDate,
			ConfirmationDate: d.ConfirmationDate,
			Amount:           d.Amount,
			Currency:         d.Currency,
		})
	}
	return out
}

func toDraftRow(position int, in dto.DraftRowDTO) *entity.DraftRow {
	return &entity.DraftRow{
		ID:               strings.TrimSpace(in.ID),
		Position:         position,
		ClientTaxID:      in.RucCliente,
		ProviderTaxID:    in.RucProveedor,
		DocumentType:     in.TipoDocumento,
		DocumentNumber:   in.NroDocumento,
		InternalCode:     in.CodInternoDoc,
		IssueDate:        in.FechaEmision,
		DueDate:          in.FechaVencimiento,
		ConfirmationDate: in.FechaConfirmacion,
		Amount:           in.Importe,
		Currency:         in.Moneda,
	}
}

func toDraftRowDTO(r *entity.DraftRow) dto.DraftRowDTO {
	return dto.DraftRowDTO{
		ID:                r.ID,
		RucCliente:        r.ClientTaxID,
		RucProveedor:      r.ProviderTaxID,
		TipoDocumento:     r.DocumentType,
		NroDocumento:      r.DocumentNumber,
		CodInternoDoc:     r.InternalCode,
		FechaEmision:      r.IssueDate,
		FechaVencimiento:  r.DueDate,
		FechaConfirmacion: r.ConfirmationDate,
		Importe:           r.Amount,
		Moneda:            r.Currency,
	}
}
