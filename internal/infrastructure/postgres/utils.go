package postgres

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/concar-rcp/internal/domain"
)

// Códigos SQLSTATE usados para clasificar errores.
const (
	codeUniqueViolation      = "23505"
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
	codeQueryCanceled        = "57014" // statement_timeout
	codeTooManyConnections   = "53300"
	codeAdminShutdown        = "57P01"
	codeCannotConnectNow     = "57P03"

	// Dos primeras asignaciones del mismo día compiten por insertar la fila del contador.
	correlativesPKey = "correlativos_pkey"
)

func pgError(err error) *pgconn.PgError {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr
	}
	return nil
}

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	if pgErr := pgError(err); pgErr != nil {
		return pgErr.Code == codeUniqueViolation
	}
	return strings.Contains(err.Error(), codeUniqueViolation)
}

// isRetryable indica si la transacción de envío puede repetirse desde cero.
func isRetryable(err error) bool {
	pgErr := pgError(err)
	if pgErr == nil {
		return false
	}
	switch pgErr.Code {
	case codeSerializationFailure, codeDeadlockDetected:
		return true
	case codeUniqueViolation:
		return pgErr.ConstraintName == correlativesPKey
	}
	return false
}

// isUnavailable indica que la base de datos no pudo atender (conexión caída o timeout).
func isUnavailable(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	if pgconn.Timeout(err) {
		return true
	}
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	if pgErr := pgError(err); pgErr != nil {
		switch pgErr.Code {
		case codeQueryCanceled, codeTooManyConnections, codeAdminShutdown, codeCannotConnectNow:
			return true
		}
		// Clase 08: connection exception.
		return strings.HasPrefix(pgErr.Code, "08")
	}
	return false
}

// classify envuelve el error con el sentinel de dominio que corresponda.
func classify(err error) error {
	if err == nil {
		return nil
	}
	if isUnavailable(err) && !errors.Is(err, domain.ErrUnavailable) {
		return fmt.Errorf("%w: %w", domain.ErrUnavailable, err)
	}
	return err
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
