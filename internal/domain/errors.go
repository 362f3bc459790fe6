package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	// ErrConflict la transacción no pudo serializarse tras los reintentos; el cliente puede reenviar.
	ErrConflict = errors.New("conflicto de concurrencia, reintente la operación")
	// ErrUnavailable la base de datos no respondió (pool agotado, conexión caída o timeout).
	ErrUnavailable = errors.New("almacenamiento no disponible")
)

// FieldError describe un campo rechazado. Row es 1-based; 0 cuando el error es del lote completo.
type FieldError struct {
	Row     int    `json:"fila,omitempty"`
	Field   string `json:"campo"`
	Message string `json:"mensaje"`
}

func (e FieldError) String() string {
	if e.Row > 0 {
		return fmt.Sprintf("fila %d, %s: %s", e.Row, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError agrupa los errores de entrada de una petición. errors.Is(err, ErrInvalidInput) es true.
type ValidationError struct {
	Fields []FieldError
}

// NewValidationError construye el error con los campos indicados.
func NewValidationError(fields ...FieldError) *ValidationError {
	return &ValidationError{Fields: fields}
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.String())
	}
	return ErrInvalidInput.Error() + ": " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }
