// Package concar genera y lee los archivos de importación por lotes de CONCAR:
// el nombre RCP del archivo, el formato posicional de ancho fijo (canónico) y
// el resumen delimitado por pipes agrupado por RUC de cliente.
package concar

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// FilenamePrefix prefijo de todos los archivos de recepción.
const FilenamePrefix = "RCP"

// ErrInvalidFilename el nombre no respeta RCP + AAAAMMDD + correlativo + .txt.
var ErrInvalidFilename = errors.New("concar: nombre de archivo inválido")

var filenamePattern = regexp.MustCompile(`^RCP(\d{8})(\d{3,})\.txt$`)

// Filename construye el nombre del archivo para la fecha y el correlativo del día.
// Ej: 2025-01-15 y 7 → "RCP20250115007.txt". Sólo se usan año, mes y día de date.
func Filename(date time.Time, correlative int) string {
	return fmt.Sprintf("%s%s%03d.txt", FilenamePrefix, date.Format("20060102"), correlative)
}

// ParseFilename recupera la fecha (UTC, medianoche) y el correlativo de un nombre RCP.
func ParseFilename(name string) (time.Time, int, error) {
	m := filenamePattern.FindStringSubmatch(name)
	if m == nil {
		return time.Time{}, 0, fmt.Errorf("%w: %q", ErrInvalidFilename, name)
	}
	date, err := time.Parse("20060102", m[1])
	if err != nil {
		return time.Time{}, 0, fmt.Errorf("%w: fecha %q", ErrInvalidFilename, m[1])
	}
	n, err := strconv.Atoi(m[2])
	if err != nil || n <= 0 {
		return time.Time{}, 0, fmt.Errorf("%w: correlativo %q", ErrInvalidFilename, m[2])
	}
	// Evita aceptar "RCP202501150007.txt" como alias de RCP20250115007.txt.
	if Filename(date, n) != name {
		return time.Time{}, 0, fmt.Errorf("%w: %q no es canónico", ErrInvalidFilename, name)
	}
	return date, n, nil
}
