package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"invoicer/internal/core/apperror"
)

// PostgreSQL error codes the repositories translate.
const (
	pgUniqueViolation     = "23505"
	pgCheckViolation      = "23514"
	pgNotNullViolation    = "23502"
	pgForeignKeyViolation = "23503"
	pgNumericOutOfRange   = "22003"
)

// moneyField names the NUMERIC(12,2) column of each entity.
var moneyField = map[string]string{
	"product": "price",
}

// MapError converts a driver error into an AppError.
// Constraint violations become client errors; everything else is a
// storage failure whose cause stays out of the response.
func MapError(err error, entity string) error {
	if err == nil {
		return nil
	}
	if apperror.IsAppError(err) {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return apperror.NewDuplicate(entity, pgErr.ConstraintName, "").WithCause(err)
		case pgCheckViolation, pgNotNullViolation:
			return apperror.NewValidation("value violates "+entity+" constraints").
				WithDetail("constraint", pgErr.ConstraintName).
				WithCause(err)
		case pgNumericOutOfRange:
			field, ok := moneyField[entity]
			if !ok {
				field = "amount"
			}
			return apperror.NewValidation(field+" is out of range").
				WithDetail("field", field).
				WithDetail("max", "9999999999.99").
				WithCause(err)
		case pgForeignKeyViolation:
			return apperror.NewValidation("referenced record does not exist").
				WithDetail("constraint", pgErr.ConstraintName).
				WithCause(err)
		}
	}
	return apperror.NewStorage(err)
}
