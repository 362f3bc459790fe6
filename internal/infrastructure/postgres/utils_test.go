package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/concar-rcp/internal/domain"
)

func TestIsRetryable(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"serialización", &pgconn.PgError{Code: codeSerializationFailure}, true},
		{"deadlock", &pgconn.PgError{Code: codeDeadlockDetected}, true},
		{"carrera contador", fmt.Errorf("insert correlativo: %w", &pgconn.PgError{Code: codeUniqueViolation, ConstraintName: correlativesPKey}), true},
		{"nombre duplicado", &pgconn.PgError{Code: codeUniqueViolation, ConstraintName: "transacciones_nombre_archivo_key"}, false},
		{"otro", errors.New("x"), false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, isRetryable(c.err))
		})
	}
}

func TestClassify_NoDisponible(t *testing.T) {
	err := classify(fmt.Errorf("begin: %w", context.DeadlineExceeded))
	assert.ErrorIs(t, err, domain.ErrUnavailable)

	err = classify(&pgconn.PgError{Code: codeQueryCanceled})
	assert.ErrorIs(t, err, domain.ErrUnavailable)

	err = classify(&pgconn.PgError{Code: "08006"})
	assert.ErrorIs(t, err, domain.ErrUnavailable)

	plain := errors.New("otro")
	assert.Equal(t, plain, classify(plain))
	assert.NoError(t, classify(nil))
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(&pgconn.PgError{Code: codeUniqueViolation}))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: codeSerializationFailure}))
}
