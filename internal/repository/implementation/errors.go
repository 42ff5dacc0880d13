package implementation

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"noteful-be/internal/apperror"
)

// translateUniqueViolation re-classifies a Postgres unique-index violation
// into a domain DuplicateName error with the given message. Any other error
// passes through untouched and will surface as Unclassified at the boundary.
func translateUniqueViolation(err error, message string) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return apperror.DuplicateName(message)
	}
	return err
}
