package dto

import "time"

// BatchResponse resumen de un lote enviado.
type BatchResponse struct {
	ID                int64     `json:"id"`
	Correlativo       int       `json:"correlativo"`
	Fecha             string    `json:"fecha"`
	NombreArchivo     string    `json:"nombre_archivo"`
	CantidadRegistros int       `json:"cantidad_registros"`
	ImporteTotal      string    `json:"importe_total"`
	CreatedAt         time.Time `json:"created_at"`
}

// BatchPage página del historial de lotes.
type BatchPage struct {
	Success bool            `json:"success"`
	Lotes   []BatchResponse `json:"lotes"`
	Total   int             `json:"total"`
	Limit   int             `json:"limit"`
	Offset  int             `json:"offset"`
}

// BatchDetailResponse lote con sus documentos para GET /api/lotes/:archivo.
type BatchDetailResponse struct {
	BatchResponse
	Documentos []DocumentResponse `json:"documentos"`
}
