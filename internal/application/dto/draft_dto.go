package dto

import "time"

// DraftRowDTO fila del formulario en edición. Los campos son texto libre sin validar.
type DraftRowDTO struct {
	ID                string `json:"id"`
	RucCliente        string `json:"rucCliente"`
	RucProveedor      string `json:"rucProveedor"`
	TipoDocumento     string `json:"tipoDocumento"`
	NroDocumento      string `json:"nroDocumento"`
	CodInternoDoc     string `json:"codInternoDoc"`
	FechaEmision      string `json:"fechaEmision"`
	FechaVencimiento  string `json:"fechaVencimiento"`
	FechaConfirmacion string `json:"fechaConfirmacion"`
	Importe           string `json:"importe"`
	Moneda            string `json:"moneda"`
}

// SaveDraftsRequest body para PUT /api/borradores.
type SaveDraftsRequest struct {
	Filas []DraftRowDTO `json:"filas"`
}

// DraftsResponse filas guardadas.
type DraftsResponse struct {
	Filas     []DraftRowDTO `json:"filas"`
	UpdatedAt *time.Time    `json:"updated_at,omitempty"`
}
