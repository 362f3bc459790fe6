package entity

import "time"

// CorrelativeCounter último correlativo asignado en una fecha. Una fila por día; sólo crece.
type CorrelativeCounter struct {
	Date      time.Time
	LastValue int
	UpdatedAt time.Time
}
