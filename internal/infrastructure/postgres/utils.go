package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolation código SQLSTATE de violación de constraint único.
const uniqueViolation = "23505"

// mapUnique traduce una violación de unicidad de PostgreSQL al error de
// dominio dado; cualquier otro error se devuelve intacto para que el caller
// lo envuelva con contexto. Compatible con errors.Is aunque el resultado se
// envuelva después.
func mapUnique(err error, domainErr error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return domainErr
	}
	return err
}
