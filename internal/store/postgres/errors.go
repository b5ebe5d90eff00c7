package postgres

import (
	"errors"
	"fmt"

	"github.com/goto/backoffice/pkg/apierror"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgerrcode"
)

var (
	errNilDBClient    = errors.New("db client is nil")
	errDuplicateKey   = errors.New("duplicate key")
	errCheckViolation = errors.New("check constraint violation")
)

func checkPostgresError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return fmt.Errorf("%w [%s]", errDuplicateKey, pgErr.Detail)
		case pgerrcode.CheckViolation:
			return fmt.Errorf("%w [%s]", errCheckViolation, pgErr.ConstraintName)
		}
	}
	return err
}

// documentError reports a failed write of one document. Constraint failures
// are the caller's fault and surface as invalid requests.
func documentError(op, resource, id string, err error) error {
	err = checkPostgresError(err)
	switch {
	case errors.Is(err, errDuplicateKey):
		return apierror.Invalid(fmt.Sprintf("%s with id %q already exists", resource, id), nil)
	case errors.Is(err, errCheckViolation):
		return apierror.Invalid(fmt.Sprintf("%s %q is not a valid document: %s", resource, id, err), nil)
	}
	return fmt.Errorf("%s %s %q: %w", op, resource, id, err)
}
