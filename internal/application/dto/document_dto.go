package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// AmountText importe tal como llega del formulario: número JSON, texto o null.
// El texto se conserva y se interpreta después (vacío o no numérico vale 0).
type AmountText string

// UnmarshalJSON acepta 150.5, "150.5" y null.
func (a *AmountText) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*a = ""
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = AmountText(s)
	case len(data) > 0 && (data[0] == '-' || (data[0] >= '0' && data[0] <= '9')):
		*a = AmountText(data)
	default:
		return fmt.Errorf("importe: valor JSON no soportado %s", data)
	}
	return nil
}

// DocumentInput documento del formulario (campos de texto libre).
// Los nombres JSON son los que usa el formulario web.
type DocumentInput struct {
	RucCliente        string     `json:"ruc_cliente"`
	RucProveedor      string     `json:"ruc_proveedor"`
	TipoDocumento     string     `json:"tipo_documento"`
	NroDocumento      string     `json:"nro_documento"`
	CodInternoDoc     string     `json:"cod_interno_doc,omitempty"`
	FechaEmision      string     `json:"fecha_emision,omitempty"`      // AAAA-MM-DD
	FechaVencimiento  string     `json:"fecha_vencimiento,omitempty"`  // AAAA-MM-DD
	FechaConfirmacion string     `json:"fecha_confirmacion,omitempty"` // AAAA-MM-DD
	Importe           AmountText `json:"importe"`
	Mon               string     `json:"mon"`
}

// SubmitDocumentsRequest body para POST /api/documentos.
// FechaCliente se acepta por compatibilidad pero no se usa: la fecha del lote es la del servidor.
type SubmitDocumentsRequest struct {
	Documentos   []DocumentInput `json:"documentos"`
	FechaCliente string          `json:"fechaCliente,omitempty"`
}

// SubmitDocumentsResponse resultado de un envío confirmado.
type SubmitDocumentsResponse struct {
	Success       bool   `json:"success"`
	Correlativo   int    `json:"correlativo"`
	NombreArchivo string `json:"nombre_archivo"`
	Fecha         string `json:"fecha"`
	Cantidad      int    `json:"cantidad"`
	ImporteTotal  string `json:"importe_total"`
	Mensaje       string `json:"mensaje"`
}

// DocumentResponse documento persistido en respuestas del historial.
type DocumentResponse struct {
	ID                int64     `json:"id"`
	Correlativo       int       `json:"correlativo"`
	FechaLote         string    `json:"fecha_lote"`
	NombreArchivo     string    `json:"nombre_archivo"`
	RucCliente        string    `json:"ruc_cliente"`
	RucProveedor      string    `json:"ruc_proveedor"`
	TipoDocumento     string    `json:"tipo_documento"`
	NroDocumento      string    `json:"nro_documento"`
	CodInternoDoc     *string   `json:"cod_interno_doc"`
	FechaEmision      *string   `json:"fecha_emision"`
	FechaVencimiento  *string   `json:"fecha_vencimiento"`
	FechaConfirmacion *string   `json:"fecha_confirmacion"`
	Importe           string    `json:"importe"`
	Mon               string    `json:"mon"`
	CreatedAt         time.Time `json:"created_at"`
}

// HistoryQuery parámetros de GET /api/documentos.
type HistoryQuery struct {
	PageRequest
	FechaDesde string `query:"fechaDesde"` // AAAA-MM-DD, inclusivo
	FechaHasta string `query:"fechaHasta"` // AAAA-MM-DD, inclusivo
}

// DocumentPage página del historial de documentos.
type DocumentPage struct {
	Success    bool               `json:"success"`
	Documentos []DocumentResponse `json:"documentos"`
	Total      int                `json:"total"`
	Limit      int                `json:"limit"`
	Offset     int                `json:"offset"`
}
