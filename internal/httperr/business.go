package httperr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// BusinessError é um erro de regra de negócio identificado por código.
// Atravessa as camadas de usecase sem carregar nada de HTTP.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// IsConstraintConflict detecta violações de unicidade/exclusão vindas do
// Postgres (23505 unique_violation, 23P01 exclusion_violation).
func IsConstraintConflict(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" || pgErr.Code == "23P01"
	}
	return false
}
